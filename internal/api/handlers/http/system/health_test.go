package system

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	rr := httptest.NewRecorder()
	NewHandler(logger, map[string]Pinger{"postgres": up, "redis": up}).SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewHandler(logger, map[string]Pinger{"postgres": up, "redis": down}).SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":{"postgres":"ok","redis":"down"}}`, rr.Body.String())
}
