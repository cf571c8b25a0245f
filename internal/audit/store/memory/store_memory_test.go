package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tincheck/internal/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	for i := range 5 {
		require.NoError(t, store.Append(ctx, audit.Event{
			ID:           uuid.New(),
			Timestamp:    time.Now().Add(time.Duration(i) * time.Second),
			Jurisdiction: "za",
			Outcome:      audit.OutcomeValid,
		}))
	}

	t.Run("list returns newest first", func(t *testing.T) {
		events, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i := 1; i < len(events); i++ {
			assert.True(t, !events[i].Timestamp.After(events[i-1].Timestamp))
		}
	})

	t.Run("list honors the limit", func(t *testing.T) {
		events, err := store.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		store.Clear()
		events, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
