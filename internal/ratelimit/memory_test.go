package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit", func(t *testing.T) {
		l := NewMemoryLimiter(3, time.Minute)

		for i := range 3 {
			res, err := l.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, 2-i, res.Remaining)
		}

		res, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Zero(t, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Minute)

		res, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = l.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("window expiry resets the budget", func(t *testing.T) {
		l := NewMemoryLimiter(1, time.Minute)
		current := time.Now()
		l.now = func() time.Time { return current }

		res, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, res.Allowed)

		current = current.Add(time.Minute + time.Second)
		res, err = l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("stale keys are swept", func(t *testing.T) {
		l := NewMemoryLimiter(5, time.Minute)
		current := time.Now()
		l.now = func() time.Time { return current }

		for _, key := range []string{"a", "b", "c"} {
			_, err := l.Allow(ctx, key)
			require.NoError(t, err)
		}
		require.Len(t, l.windows, 3)

		current = current.Add(2 * time.Minute)
		_, err := l.Allow(ctx, "d")
		require.NoError(t, err)

		require.Len(t, l.windows, 1)
		_, ok := l.windows["d"]
		assert.True(t, ok)
	})
}
