package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/library-console/cache"
	"github.com/marcelsud/library-console/catalog"
)

// StatsSource is the cache store.
type StatsSource interface {
	Stats() cache.Stats
}

// EntryCounter is a cache backend that can count its entries.
type EntryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// FallbackCounter is the fallback repository.
type FallbackCounter interface {
	Fallbacks() int64
}

// MutationSource is the catalog service.
type MutationSource interface {
	Mutations() []catalog.MutationState
}

// ConsoleCollector implements the Collector interface over the live components
type ConsoleCollector struct {
	store     StatsSource
	entries   EntryCounter
	fallbacks FallbackCounter
	mutations MutationSource
}

// NewConsoleCollector creates a new collector. entries and fallbacks may be nil.
func NewConsoleCollector(store StatsSource, entries EntryCounter, fallbacks FallbackCounter, mutations MutationSource) *ConsoleCollector {
	return &ConsoleCollector{
		store:     store,
		entries:   entries,
		fallbacks: fallbacks,
		mutations: mutations,
	}
}

// Collect gathers all metrics
func (c *ConsoleCollector) Collect(ctx context.Context) (Metrics, error) {
	stats, err := c.GetCacheStats(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting cache stats: %w", err)
	}

	entries, err := c.GetCachedEntries(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting cached entries: %w", err)
	}

	fallbacks, err := c.GetFallbackCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting fallback count: %w", err)
	}

	mutations, err := c.GetMutationCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting mutation counts: %w", err)
	}

	return Metrics{
		Cache:          stats,
		CachedEntries:  entries,
		Fallbacks:      fallbacks,
		MutationCounts: mutations,
		Timestamp:      time.Now(),
	}, nil
}

func (c *ConsoleCollector) GetCacheStats(_ context.Context) (cache.Stats, error) {
	return c.store.Stats(), nil
}

func (c *ConsoleCollector) GetCachedEntries(ctx context.Context) (int64, error) {
	if c.entries == nil {
		return 0, nil
	}
	return c.entries.Count(ctx)
}

func (c *ConsoleCollector) GetFallbackCount(_ context.Context) (int64, error) {
	if c.fallbacks == nil {
		return 0, nil
	}
	return c.fallbacks.Fallbacks(), nil
}

// GetMutationCounts returns counts for every status, zero included
func (c *ConsoleCollector) GetMutationCounts(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{
		catalog.Idle.String():      0,
		catalog.Pending.String():   0,
		catalog.Succeeded.String(): 0,
		catalog.Failed.String():    0,
	}
	for _, m := range c.mutations.Mutations() {
		counts[m.Status.String()]++
	}
	return counts, nil
}
