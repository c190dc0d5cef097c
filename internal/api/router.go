package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hazardpoint/internal/api/handlers/http/admin"
	"hazardpoint/internal/api/handlers/http/hazards"
	"hazardpoint/internal/api/handlers/http/system"
	"hazardpoint/internal/config"
	"hazardpoint/internal/middleware"
)

type Server struct {
	logger  *slog.Logger
	cfg     *config.Config
	httpSrv *http.Server
}

func NewServer(
	logger *slog.Logger,
	cfg *config.Config,
	hazardsHandler *hazards.Handler,
	adminHandler *admin.Handler,
) *Server {
	s := &Server{
		logger: logger,
		cfg:    cfg,
	}

	s.httpSrv = &http.Server{
		Addr:         cfg.Http.Port,
		Handler:      s.initRouter(hazardsHandler, adminHandler),
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
	}

	return s
}

func (s *Server) initRouter(hazardsHandler *hazards.Handler, adminHandler *admin.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	identity := middleware.Identity(s.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", system.Health)

		r.Route("/hazards", func(r chi.Router) {
			r.Use(middleware.Limit(10, 20, 3*time.Minute, s.logger))

			r.Get("/", hazardsHandler.HazardList)
			r.Get("/feed", hazardsHandler.HazardFeed)
			r.With(identity).Post("/", hazardsHandler.HazardCreate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", hazardsHandler.HazardGet)
				r.Get("/status", hazardsHandler.HazardStatus)
				r.With(identity).Post("/extend", hazardsHandler.HazardExtend)
				r.With(identity).Post("/vote", hazardsHandler.VoteCast)

				r.Route("/resolution", func(r chi.Router) {
					r.Use(identity)
					r.Post("/", hazardsHandler.ResolutionSubmit)
					r.Post("/confirm", hazardsHandler.ResolutionConfirm)
				})
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyMiddleware(s.cfg.AdminKey))
			r.Use(middleware.Limit(5, 10, 3*time.Minute, s.logger))

			r.Get("/hazards", adminHandler.HazardList)
			r.Get("/stats", adminHandler.GetStats)
			r.Post("/hazards/{id}/resolve", adminHandler.ForceResolve)
		})
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server starting", slog.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")
	return s.httpSrv.Shutdown(shutdownCtx)
}
