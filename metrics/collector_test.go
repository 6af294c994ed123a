package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/marcelsud/library-console/cache"
	"github.com/marcelsud/library-console/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct{ stats cache.Stats }

func (f fakeStore) Stats() cache.Stats { return f.stats }

type fakeEntries struct {
	n   int64
	err error
}

func (f fakeEntries) Count(context.Context) (int64, error) { return f.n, f.err }

type fakeFallbacks int64

func (f fakeFallbacks) Fallbacks() int64 { return int64(f) }

type fakeMutations []catalog.MutationState

func (f fakeMutations) Mutations() []catalog.MutationState { return f }

func TestConsoleCollector_Collect(t *testing.T) {
	ctx := context.Background()
	t.Run("gathers every source", func(t *testing.T) {
		c := NewConsoleCollector(
			fakeStore{stats: cache.Stats{Hits: 3, Misses: 1, Fetches: 1}},
			fakeEntries{n: 2},
			fakeFallbacks(4),
			fakeMutations{{Status: catalog.Succeeded}, {Status: catalog.Succeeded}, {Status: catalog.Failed}},
		)
		m, err := c.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), m.Cache.Hits)
		assert.Equal(t, int64(2), m.CachedEntries)
		assert.Equal(t, int64(4), m.Fallbacks)
		assert.Equal(t, int64(2), m.MutationCounts["succeeded"])
		assert.Equal(t, int64(1), m.MutationCounts["failed"])
		assert.Equal(t, int64(0), m.MutationCounts["pending"])
		assert.False(t, m.Timestamp.IsZero())
	})
	t.Run("optional sources", func(t *testing.T) {
		c := NewConsoleCollector(fakeStore{}, nil, nil, fakeMutations{})
		m, err := c.Collect(ctx)
		require.NoError(t, err)
		assert.Zero(t, m.CachedEntries)
		assert.Zero(t, m.Fallbacks)
	})
	t.Run("backend failure", func(t *testing.T) {
		c := NewConsoleCollector(fakeStore{}, fakeEntries{err: errors.New("redis down")}, nil, fakeMutations{})
		_, err := c.Collect(ctx)
		assert.ErrorContains(t, err, "getting cached entries")
	})
}

func TestOTelExporter(t *testing.T) {
	c := NewConsoleCollector(fakeStore{stats: cache.Stats{Hits: 7}}, fakeEntries{n: 1}, fakeFallbacks(2), fakeMutations{})
	oe, err := NewOTelExporter(c)
	require.NoError(t, err)
	defer oe.Shutdown(context.Background())

	rec := httptest.NewRecorder()
	oe.ServeHTTP().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "console_cache_events")
	assert.Contains(t, string(body), `cache_event="hit"`)
	assert.Contains(t, string(body), "console_fallback_activations")
	assert.Contains(t, string(body), "console_mutations")
}
