package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is the distributed fixed-window limiter. Counters live in
// Redis keyed by client and window bucket, so all replicas share one budget.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter allowing limit requests per
// window.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for the current window bucket and compares it
// against the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := time.Now()
	bucket := now.Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)
	resetAt := time.Unix((bucket+1)*int64(l.window.Seconds()), 0)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// Expire a window late so a bucket survives clock skew between replicas.
	pipe.Expire(ctx, redisKey, 2*l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit check: %w", err)
	}

	count := int(incr.Val())
	if count > l.limit {
		return Result{Allowed: false, Limit: l.limit, Remaining: 0, ResetAt: resetAt}, nil
	}
	return Result{Allowed: true, Limit: l.limit, Remaining: l.limit - count, ResetAt: resetAt}, nil
}
