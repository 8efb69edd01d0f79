// Package metrics holds the Prometheus collectors of the service. Every
// method is safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	photoUploads    *prometheus.CounterVec
	rollbacks       prometheus.Counter
	cacheLookups    *prometheus.CounterVec
	eventsDelivered *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	photoUploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_photo_uploads_total",
		Help: "Photo and thumbnail uploads to the object store",
	}, []string{"kind", "result"})

	rollbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "incident_create_rollbacks_total",
		Help: "Incident creations undone after an ingestion failure",
	})

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lookup_cache_requests_total",
		Help: "Lookup cache reads by result",
	}, []string{"result"})

	eventsDelivered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "incident_events_delivered_total",
		Help: "Incident events posted to the webhook by result",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, photoUploads, rollbacks, cacheLookups, eventsDelivered, goroutines)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		photoUploads:    photoUploads,
		rollbacks:       rollbacks,
		cacheLookups:    cacheLookups,
		eventsDelivered: eventsDelivered,
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// PhotoUploaded counts one upload; kind is "photo" or "miniature".
func (m *Metrics) PhotoUploaded(kind string, ok bool) {
	if m == nil {
		return
	}
	m.photoUploads.WithLabelValues(kind, result(ok)).Inc()
}

func (m *Metrics) CreateRolledBack() {
	if m == nil {
		return
	}
	m.rollbacks.Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	label := "miss"
	if hit {
		label = "hit"
	}
	m.cacheLookups.WithLabelValues(label).Inc()
}

func (m *Metrics) EventDelivered(ok bool) {
	if m == nil {
		return
	}
	m.eventsDelivered.WithLabelValues(result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
