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

	"github.com/mariomediam/maps-backend/internal/api/handlers/http/incidents"
	"github.com/mariomediam/maps-backend/internal/api/handlers/http/lookups"
	"github.com/mariomediam/maps-backend/internal/api/handlers/http/system"
	"github.com/mariomediam/maps-backend/internal/config"
	"github.com/mariomediam/maps-backend/internal/metrics"
	"github.com/mariomediam/maps-backend/internal/middleware"
	"github.com/mariomediam/maps-backend/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Incidents *incidents.Handler
	Lookups   *lookups.Handler
	System    *system.Handler
	Auth      *middleware.Authenticator
	Metrics   *metrics.Metrics
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, m *metrics.Metrics, checks map[string]system.Pinger) *Server {
	h := Handlers{
		Incidents: incidents.NewHandler(logger, svc.Incidents, cfg.Http.MaxUploadBytes),
		Lookups:   lookups.NewHandler(logger, svc.Lookups),
		System:    system.NewHandler(logger, checks),
		Auth:      middleware.NewAuthenticator(cfg.Auth.JWTSecret, logger),
		Metrics:   m,
	}

	return &Server{
		logger: logger,
		router: InitRouter(ctx, cfg, h, logger),
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics(h.Metrics))

	r.Get("/health", h.System.SystemHealth)
	r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())

	submitLimit := middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(chimw.StripSlashes)

		api.Route("/incidents", func(ir chi.Router) {
			ir.With(submitLimit, h.Auth.OptionalJWT).Post("/", h.Incidents.IncidentCreate)
			ir.Get("/", h.Incidents.IncidentList)
			ir.Get("/map", h.Incidents.IncidentMap)
			ir.Get("/photography/{id}", h.Incidents.PhotographGet)
			ir.Get("/miniature/{id}", h.Incidents.MiniatureGet)

			ir.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Incidents.IncidentGet)
				rr.With(h.Auth.JWT).Patch("/", h.Incidents.IncidentUpdate)
			})
		})

		api.Get("/categories", h.Lookups.CategoryList)
		api.Get("/categories/{id}", h.Lookups.CategoryGet)
		api.Get("/priorities", h.Lookups.PriorityList)
		api.Get("/closure-types", h.Lookups.ClosureTypeList)
		api.Get("/states", h.Lookups.StateList)
	})

	return r
}

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
		s.logger.Info("Starting HTTP server",
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
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
