package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/library-console/cache"
)

// Metrics represents the current state of the console's data layer.
type Metrics struct {
	// Cache holds the query cache counters since start
	Cache cache.Stats `json:"cache"`

	// CachedEntries is the number of entries currently held by the cache backend
	CachedEntries int64 `json:"cached_entries"`

	// Fallbacks is the number of reads answered from the sample dataset
	Fallbacks int64 `json:"fallbacks"`

	// MutationCounts maps mutation status to the number of (kind, operation) pairs in it
	MutationCounts map[string]int64 `json:"mutation_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the console.
type Collector interface {
	// Collect gathers current metrics
	Collect(ctx context.Context) (Metrics, error)

	// GetCacheStats returns the query cache counters
	GetCacheStats(ctx context.Context) (cache.Stats, error)

	// GetCachedEntries returns the number of live cache entries
	GetCachedEntries(ctx context.Context) (int64, error)

	// GetFallbackCount returns how many reads fell back to sample data
	GetFallbackCount(ctx context.Context) (int64, error)

	// GetMutationCounts returns (kind, operation) pairs grouped by mutation status
	GetMutationCounts(ctx context.Context) (map[string]int64, error)
}
