package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mariomediam/maps-backend/internal/metrics"
)

func TestMetrics_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/incidents/{id}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/categories/{id}", func(w http.ResponseWriter, r *http.Request) {})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/incidents/"+id+"/", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/categories/9", nil))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/incidents/{id}",status="404"} 3`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/categories/{id}",status="200"} 1`)
	assert.NotContains(t, body, `path="/incidents/1`)
}

func TestRouteLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/":                 "/",
		"/incidents/{id}/":  "/incidents/{id}",
		"/incidents/{id}":   "/incidents/{id}",
		"/api/v1/states/":   "/api/v1/states",
		"/api/v1/incidents": "/api/v1/incidents",
	}
	for in, want := range cases {
		assert.Equal(t, want, routeLabel(in), in)
	}
}

func TestMetrics_NilPassThrough(t *testing.T) {
	t.Parallel()

	called := false
	h := Metrics(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}
