package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mariomediam/maps-backend/internal/render"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

// Limit throttles per client IP. The cleanup goroutine stops with ctx.
func Limit(ctx context.Context, rps float64, burst int, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}

	go l.cleanupVisitors(ctx, time.Minute)

	return l.middleware(logger)
}

func (l *rateLimiter) getVisitor(ip string) *rate.Limiter {
	l.Lock()
	defer l.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (l *rateLimiter) cleanupVisitors(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict(time.Now())
		}
	}
}

func (l *rateLimiter) evict(now time.Time) {
	l.Lock()
	defer l.Unlock()
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
}

func (l *rateLimiter) middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !l.getVisitor(ip).Allow() {
				logger.Warn("rate limit exceeded", slog.String("ip", ip), slog.String("path", r.URL.Path))
				render.Error(w, http.StatusTooManyRequests, "too many requests", "Rate limit exceeded, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
