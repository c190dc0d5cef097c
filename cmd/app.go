package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"log/slog"

	"hazardpoint/internal/components"
	"hazardpoint/internal/config"
)

func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		os.Exit(1)
	}

	comps, err := components.InitComponents(ctx, cfg)
	if err != nil {
		slog.Error("components init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer comps.ShutdownAll()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.WebhookSender.Run(ctx)
	}()

	if err := comps.Server.Run(ctx); err != nil {
		comps.Logger.Error("HTTP server error", slog.Any("error", err))
	}

	stop()
	wg.Wait()
	comps.Logger.Info("Shutdown complete")
}
