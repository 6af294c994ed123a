//go:build integration

package redis_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marcelsud/library-console/cache"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Integration(t *testing.T) {
	ctx := context.Background()
	addr, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	t.Run("store and retrieve entry", func(t *testing.T) {
		b := CreateTestBackend(t, addr, time.Minute)
		defer b.Close()

		fetchedAt := time.Now().Truncate(time.Millisecond)
		err := b.Set(ctx, "books", cache.Entry{Data: json.RawMessage(`[{"id":1}]`), FetchedAt: fetchedAt})
		require.NoError(t, err)

		got, ok, err := b.Get(ctx, "books")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":1}]`, string(got.Data))
		assert.True(t, fetchedAt.Equal(got.FetchedAt))
		assert.False(t, got.Invalidated)
	})

	t.Run("invalidated flag round trips", func(t *testing.T) {
		b := CreateTestBackend(t, addr, time.Minute)
		defer b.Close()

		require.NoError(t, b.Set(ctx, "authors:3", cache.Entry{Data: json.RawMessage(`{}`), FetchedAt: time.Now(), Invalidated: true}))
		got, ok, err := b.Get(ctx, "authors:3")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, got.Invalidated)
	})

	t.Run("entries carry the gc time as ttl", func(t *testing.T) {
		b := CreateTestBackend(t, addr, time.Minute)
		defer b.Close()

		require.NoError(t, b.Set(ctx, "genres", cache.Entry{Data: json.RawMessage(`[]`), FetchedAt: time.Now()}))
		client := goredis.NewClient(&goredis.Options{Addr: addr})
		defer client.Close()
		ttl, err := client.TTL(ctx, "console:cache:genres").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("entries expire", func(t *testing.T) {
		b := CreateTestBackend(t, addr, time.Second)
		defer b.Close()

		require.NoError(t, b.Set(ctx, "books:9", cache.Entry{Data: json.RawMessage(`{}`), FetchedAt: time.Now()}))
		time.Sleep(2 * time.Second)
		_, ok, err := b.Get(ctx, "books:9")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("count and delete", func(t *testing.T) {
		b := CreateTestBackend(t, addr, time.Minute)
		defer b.Close()

		require.NoError(t, b.Set(ctx, "count:1", cache.Entry{Data: json.RawMessage(`{}`), FetchedAt: time.Now()}))
		before, err := b.Count(ctx)
		require.NoError(t, err)
		require.NoError(t, b.Delete(ctx, "count:1"))
		after, err := b.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before-1, after)
	})

	t.Run("two stores share entries", func(t *testing.T) {
		first := cache.New(CreateTestBackend(t, addr, time.Minute))
		defer first.Close()
		second := cache.New(CreateTestBackend(t, addr, time.Minute))
		defer second.Close()

		var calls atomic.Int32
		fetch := func(ctx context.Context) ([]string, error) {
			calls.Add(1)
			return []string{"Fundação"}, nil
		}
		got, err := cache.Fetch(ctx, first, cache.List("shared"), fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fundação"}, got)

		got, err = cache.Fetch(ctx, second, cache.List("shared"), fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fundação"}, got)
		assert.Equal(t, int32(1), calls.Load())
	})
}
