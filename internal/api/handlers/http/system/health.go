package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mariomediam/maps-backend/internal/render"
)

// Pinger is satisfied by the Postgres pool and the Redis wrapper.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger *slog.Logger
	checks map[string]Pinger
}

func NewHandler(logger *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{logger: logger, checks: checks}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", slog.String("check", name), slog.Any("error", err))
			results[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	render.JSON(w, status, map[string]any{"status": overall, "checks": results})
}
