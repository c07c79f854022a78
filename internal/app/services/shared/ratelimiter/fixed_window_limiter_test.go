package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounterStore struct {
	counters map[string]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counters: make(map[string]int64)}
}

func (s *fakeCounterStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (s *fakeCounterStore) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (s *fakeCounterStore) Delete(ctx context.Context, key string) error {
	delete(s.counters, key)
	return nil
}

func (s *fakeCounterStore) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func (s *fakeCounterStore) Increment(ctx context.Context, key string, exp time.Duration) (int64, error) {
	s.counters[key]++
	return s.counters[key], nil
}

func TestFixedWindowLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Allows Up To Max", func(t *testing.T) {
		store := newFakeCounterStore()
		limiter := NewFixedWindowLimiter(store, "otp", 3, 10*time.Minute)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "user@example.com")
			require.NoError(t, err)
			assert.True(t, allowed, "call %d should pass", i+1)
		}

		allowed, err := limiter.Allow(ctx, "user@example.com")
		require.NoError(t, err)
		assert.False(t, allowed, "fourth call in the window must be denied")
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		store := newFakeCounterStore()
		limiter := NewFixedWindowLimiter(store, "otp", 1, 10*time.Minute)

		allowed, err := limiter.Allow(ctx, "first@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "second@example.com")
		require.NoError(t, err)
		assert.True(t, allowed, "a different key gets its own window")
	})

	t.Run("New Window Resets", func(t *testing.T) {
		store := newFakeCounterStore()
		limiter := NewFixedWindowLimiter(store, "otp", 1, 10*time.Minute)

		allowed, err := limiter.Allow(ctx, "user@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "user@example.com")
		require.NoError(t, err)
		assert.False(t, allowed)

		// Expiring the counter stands in for the window rolling over.
		for key := range store.counters {
			require.NoError(t, store.Delete(ctx, key))
		}

		allowed, err = limiter.Allow(ctx, "user@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}
