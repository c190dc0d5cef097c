package components

import (
	"context"
	"os"

	"log/slog"

	"hazardpoint/internal/api"
	adminhandler "hazardpoint/internal/api/handlers/http/admin"
	hazardshandler "hazardpoint/internal/api/handlers/http/hazards"
	"hazardpoint/internal/config"
	"hazardpoint/internal/redis"
	"hazardpoint/internal/service"
	"hazardpoint/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const webhookQueueKey = "webhooks:resolutions"

type Components struct {
	Logger        *slog.Logger
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	Services      *service.Service
	Server        *api.Server
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config) (*Components, error) {
	logger := SetupLogger(cfg.Env)

	pg, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rdb, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		pg.Close()
		return nil, err
	}

	hazardCache := redis.NewHazardCache(rdb)
	webhookQueue := redis.NewWebhookQueue(rdb.Client, webhookQueueKey)

	hazardSvc := service.NewHazardService(pg.Hazard, hazardCache, logger, nil, cfg.Lifecycle.FeedCacheTTL)
	lifecycleSvc := service.NewLifecycleService(
		pg.Hazard,
		pg.Resolution,
		webhookQueue,
		logger,
		nil,
		cfg.Lifecycle.QuorumThreshold,
		cfg.Lifecycle.ExtendIncrement,
	)
	voteSvc := service.NewVoteService(pg.Hazard, pg.Vote, logger, nil)
	statsSvc := service.NewStatsService(pg.Stat)

	services := service.NewService(hazardSvc, lifecycleSvc, voteSvc, statsSvc)

	hazardsHandler := hazardshandler.NewHandler(logger, services.HazardService, services.LifecycleService, services.VoteService)
	adminHandler := adminhandler.NewHandler(logger, services.HazardService, services.LifecycleService, services.StatsService)

	server := api.NewServer(logger, cfg, hazardsHandler, adminHandler)
	sender := service.NewWebhookSender(logger, cfg.Webhook, webhookQueue)

	return &Components{
		Logger:        logger,
		Postgres:      pg,
		Redis:         rdb,
		Services:      services,
		Server:        server,
		WebhookSender: sender,
	}, nil
}

func (c *Components) ShutdownAll() {
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("Redis close failed", slog.Any("error", err))
		}
	}
}

func SetupLogger(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case envLocal:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envDev:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return slog.New(handler)
}
