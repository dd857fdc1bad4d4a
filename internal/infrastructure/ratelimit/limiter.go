// Package ratelimit implements a fixed-window request limiter keyed by
// client identity. Each key gets at most limit attempts per window; counters
// reset when a window expires.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
)

// Result reports the outcome of a single attempt.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time // end of the current window
}

type window struct {
	count int
	start time.Time
}

// Limiter is a fixed-window per-key counter. The increment-and-compare for a
// key happens under one lock, so concurrent attempts from the same client
// can never both slip under the limit.
type Limiter struct {
	limit    int
	interval time.Duration
	mu       sync.Mutex
	windows  map[string]*window
	now      func() time.Time
}

// NewLimiter creates a limiter allowing limit attempts per interval per key.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Attempt records one attempt for key and reports whether it is allowed.
// The first attempt of a fresh or expired window always succeeds.
func (l *Limiter) Attempt(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, exists := l.windows[key]
	if !exists || now.Sub(w.start) >= l.interval {
		w = &window{count: 1, start: now}
		l.windows[key] = w
		return Result{
			Allowed:   true,
			Limit:     l.limit,
			Remaining: l.limit - 1,
			Reset:     w.start.Add(l.interval),
		}
	}

	w.count++

	remaining := l.limit - w.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   w.count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     w.start.Add(l.interval),
	}
}

// Prune drops windows that expired before now, bounding memory for churned
// client keys.
func (l *Limiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// StartPruning runs Prune on a ticker until ctx is cancelled.
func (l *Limiter) StartPruning(ctx context.Context, interval time.Duration, logger *logging.ChanneledLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := l.Prune(); removed > 0 && logger != nil {
				logger.System().Debug("Pruned expired rate-limit windows", "removed", removed)
			}
		}
	}
}
