package memory

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/marcelsud/library-console/cache"
)

const DefaultGCTime = 5 * time.Minute

// Backend keeps entries in process memory. Entries not read for the GC time are dropped;
// every hit extends the entry's life.
type Backend struct {
	items *ttlcache.Cache[string, cache.Entry]
}

func New(gcTime time.Duration) *Backend {
	if gcTime <= 0 {
		gcTime = DefaultGCTime
	}
	items := ttlcache.New(ttlcache.WithTTL[string, cache.Entry](gcTime))
	go items.Start()
	return &Backend{items: items}
}

func (b *Backend) Get(_ context.Context, key string) (cache.Entry, bool, error) {
	item := b.items.Get(key)
	if item == nil {
		return cache.Entry{}, false, nil
	}
	return item.Value(), true, nil
}

func (b *Backend) Set(_ context.Context, key string, e cache.Entry) error {
	b.items.Set(key, e, ttlcache.DefaultTTL)
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.items.Delete(key)
	return nil
}

// Len returns the number of live entries.
func (b *Backend) Len() int {
	return b.items.Len()
}

// Count is Len in the shape the metrics collector expects.
func (b *Backend) Count(_ context.Context) (int64, error) {
	return int64(b.items.Len()), nil
}

func (b *Backend) Close() error {
	b.items.Stop()
	return nil
}
