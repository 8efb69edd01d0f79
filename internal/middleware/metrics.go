package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mariomediam/maps-backend/internal/metrics"
)

// Metrics records every request under its chi route pattern so that ids in
// the path do not explode the label set. The pattern is reported without a
// trailing slash.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}
			path = routeLabel(path)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveHTTPRequest(r.Method, path, status, time.Since(start))
		})
	}
}

func routeLabel(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}
