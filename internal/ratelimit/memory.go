package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the in-process fixed-window limiter. Not distributed;
// deployments with more than one replica should configure Redis.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

type window struct {
	start time.Time
	count int
}

// NewMemoryLimiter creates an in-memory limiter allowing limit requests per
// window.
func NewMemoryLimiter(limit int, windowSize time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  windowSize,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow checks and increments the counter for a key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = &window{start: now}
		l.windows[key] = w
	}

	resetAt := w.start.Add(l.window)
	if w.count >= l.limit {
		return Result{Allowed: false, Limit: l.limit, Remaining: 0, ResetAt: resetAt}, nil
	}
	w.count++
	return Result{Allowed: true, Limit: l.limit, Remaining: l.limit - w.count, ResetAt: resetAt}, nil
}

// sweep drops expired windows so keys that never return do not accumulate.
// Runs at most once per window length. Caller must hold the lock.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
