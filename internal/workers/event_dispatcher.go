package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mariomediam/maps-backend/internal/config"
	"github.com/mariomediam/maps-backend/internal/domain"
	"github.com/mariomediam/maps-backend/internal/metrics"
	"github.com/mariomediam/maps-backend/pkg/e"
)

type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.IncidentEvent, error)
}

const (
	popTimeout  = 5 * time.Second
	maxAttempts = 3
)

// EventDispatcher drains the lifecycle event queue and POSTs every event to
// the configured webhook. Delivery is at most maxAttempts tries; an event
// that still fails is dropped and counted.
type EventDispatcher struct {
	source   EventSource
	url      string
	poolSize int
	http     *http.Client
	metrics  *metrics.Metrics
	logger   *slog.Logger

	// backoff is the pause after a failed attempt.
	backoff func(attempt int) time.Duration
}

func NewEventDispatcher(source EventSource, cfg config.WebhookConfig, m *metrics.Metrics, logger *slog.Logger) *EventDispatcher {
	pool := cfg.Workers
	if pool <= 0 {
		pool = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &EventDispatcher{
		source:   source,
		url:      cfg.URL,
		poolSize: pool,
		http:     &http.Client{Timeout: timeout},
		metrics:  m,
		logger:   logger,
		backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// Run blocks until ctx is done.
func (d *EventDispatcher) Run(ctx context.Context) {
	d.logger.Info("event dispatcher started", slog.String("url", d.url), slog.Int("workers", d.poolSize))

	jobs := make(chan domain.IncidentEvent, d.poolSize)
	var wg sync.WaitGroup

	for i := 0; i < d.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.worker(ctx, jobs)
		}()
	}

	d.producer(ctx, jobs)
	close(jobs)
	wg.Wait()

	d.logger.Info("event dispatcher stopped", slog.String("reason", context.Cause(ctx).Error()))
}

func (d *EventDispatcher) producer(ctx context.Context, jobs chan<- domain.IncidentEvent) {
	for ctx.Err() == nil {
		ev, err := d.source.BRPop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrEventQueueEmpty) || ctx.Err() != nil {
				continue
			}
			d.logger.Error("event queue pop failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		select {
		case jobs <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (d *EventDispatcher) worker(ctx context.Context, jobs <-chan domain.IncidentEvent) {
	for ev := range jobs {
		ok := d.deliver(ctx, ev)
		d.metrics.EventDelivered(ok)
	}
}

// deliver reports whether the webhook accepted the event.
func (d *EventDispatcher) deliver(ctx context.Context, ev domain.IncidentEvent) bool {
	body, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("marshal event failed", slog.Any("error", err))
		return false
	}

	log := d.logger.With(
		slog.String("event_id", ev.ID.String()),
		slog.String("type", string(ev.Type)),
		slog.Int64("incident_id", ev.IncidentID),
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			log.Info("stop retries due to context cancel")
			return false
		}

		err := d.post(ctx, body)
		if err == nil {
			log.Debug("event delivered", slog.Int("attempt", attempt))
			return true
		}

		log.Warn("event delivery failed", slog.Int("attempt", attempt), slog.String("reason", err.Error()))
		if attempt < maxAttempts {
			sleep(ctx, d.backoff(attempt))
		}
	}

	log.Error("event dropped after retries", slog.Int("attempts", maxAttempts))
	return false
}

func (d *EventDispatcher) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded %s", resp.Status)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
