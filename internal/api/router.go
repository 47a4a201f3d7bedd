package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"brims/internal/api/handlers/http/console"
	"brims/internal/api/handlers/http/system"
	"brims/internal/config"
	"brims/internal/middleware"
	"brims/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, metricsHandler http.Handler) *Server {
	consoleHandler := console.NewHandler(logger, svc.Console, svc.Actions)
	systemHandler := system.NewHandler(logger, svc.Console)

	r := InitRouter(cfg, consoleHandler, systemHandler, metricsHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, consoleHandler *console.Handler, systemHandler *system.Handler, metricsHandler http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/console", func(cr chi.Router) {
			cr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			cr.Use(middleware.Actor)
			cr.Use(middleware.Limit(20, 40, 10*time.Minute, logger))

			cr.Get("/stats", consoleHandler.Stats)
			cr.Post("/refresh", consoleHandler.Refresh)

			cr.Route("/lock", func(lr chi.Router) {
				lr.Get("/", consoleHandler.LockState)
				lr.Post("/", consoleHandler.LockAcquire)
				lr.Delete("/", consoleHandler.LockRelease)
			})

			cr.Route("/incidents", func(ir chi.Router) {
				ir.Get("/", consoleHandler.ListIncidents)
				ir.Post("/", consoleHandler.CreateIncident)

				ir.Route("/{id}", func(rr chi.Router) {
					rr.Put("/", consoleHandler.UpdateIncident)
					rr.Delete("/", consoleHandler.DeleteIncident)
					rr.Get("/policy", consoleHandler.IncidentPolicy)
					rr.Patch("/status", consoleHandler.ChangeStatus)
					rr.Put("/population", consoleHandler.SavePopulation)
					rr.Put("/infrastructure", consoleHandler.SaveInfrastructure)
				})
			})

			cr.Route("/notifications", func(nr chi.Router) {
				nr.Post("/read-all", consoleHandler.MarkAllNotificationsRead)
				nr.Delete("/", consoleHandler.DeleteAllNotifications)
				nr.Post("/{id}/read", consoleHandler.MarkNotificationRead)
			})
		})

		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	return r
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
