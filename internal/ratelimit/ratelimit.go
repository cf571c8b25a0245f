// Package ratelimit applies a fixed-window request limit per client.
//
// Two limiter implementations share one contract: a Redis-backed limiter for
// distributed deployments and an in-memory limiter used when Redis is not
// configured. Limit checks fail open; an unavailable limiter must not take
// the validation API down with it.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of one limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
