package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	existing map[uint]bool
	calls    int
}

func (d *countingDirectory) UnitExists(_ context.Context, id uint) (bool, error) {
	d.calls++
	return d.existing[id], nil
}

func TestCachedUnitDirectory(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*CachedUnitDirectory, *countingDirectory, *miniredis.Miniredis) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		next := &countingDirectory{existing: map[uint]bool{1: true}}
		return NewCachedUnitDirectory(next, client, 5*time.Minute), next, mr
	}

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		dir, next, _ := setup(t)

		exists, err := dir.UnitExists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, next.calls)

		exists, err = dir.UnitExists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("negative answers are cached too", func(t *testing.T) {
		dir, next, _ := setup(t)

		exists, err := dir.UnitExists(ctx, 42)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = dir.UnitExists(ctx, 42)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("invalidate forces a fresh lookup", func(t *testing.T) {
		dir, next, _ := setup(t)

		_, err := dir.UnitExists(ctx, 1)
		require.NoError(t, err)

		next.existing[1] = false
		dir.Invalidate(ctx, 1)

		exists, err := dir.UnitExists(ctx, 1)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, 2, next.calls)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		dir, next, mr := setup(t)

		_, err := dir.UnitExists(ctx, 1)
		require.NoError(t, err)

		mr.FastForward(6 * time.Minute)

		_, err = dir.UnitExists(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, next.calls)
	})

	t.Run("redis down degrades to the directory", func(t *testing.T) {
		dir, next, mr := setup(t)
		mr.Close()

		exists, err := dir.UnitExists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("nil client always asks the directory", func(t *testing.T) {
		next := &countingDirectory{existing: map[uint]bool{1: true}}
		dir := NewCachedUnitDirectory(next, nil, time.Minute)

		for i := 0; i < 3; i++ {
			exists, err := dir.UnitExists(ctx, 1)
			require.NoError(t, err)
			assert.True(t, exists)
		}
		assert.Equal(t, 3, next.calls)
	})
}
