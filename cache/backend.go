package cache

import "context"

// Backend stores entries by key string. Implementations evict entries that are not
// read for their configured idle time.
type Backend interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, e Entry) error
	Delete(ctx context.Context, key string) error
	Close() error
}
