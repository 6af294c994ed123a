package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/marcelsud/library-console/cache"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of cache.Backend
 * One hash per entry: console:cache:{key} -> data, fetched_at, invalidated
 * Every read and write pushes the key expiry out by the GC time.
 */

const keyPrefix = "console:cache"

const DefaultGCTime = 5 * time.Minute

type Backend struct {
	client *redis.Client
	gcTime time.Duration
}

// New connects to Redis and checks the connection
func New(addr, password string, db int, gcTime time.Duration) (*Backend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	return NewWithClient(client, gcTime), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, gcTime time.Duration) *Backend {
	if gcTime <= 0 {
		gcTime = DefaultGCTime
	}
	return &Backend{client: client, gcTime: gcTime}
}

func (b *Backend) Get(ctx context.Context, key string) (cache.Entry, bool, error) {
	hashKey := hashKey(key)
	data, err := b.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return cache.Entry{}, false, fmt.Errorf("getting cache entry: %w", err)
	}
	if len(data) == 0 {
		return cache.Entry{}, false, nil
	}
	if err := b.client.Expire(ctx, hashKey, b.gcTime).Err(); err != nil {
		return cache.Entry{}, false, fmt.Errorf("touching cache entry: %w", err)
	}

	fetchedAt, err := strconv.ParseInt(data["fetched_at"], 10, 64)
	if err != nil {
		return cache.Entry{}, false, fmt.Errorf("parsing fetched_at: %w", err)
	}
	return cache.Entry{
		Data:        []byte(data["data"]),
		FetchedAt:   time.UnixMilli(fetchedAt),
		Invalidated: data["invalidated"] == "1",
	}, true, nil
}

func (b *Backend) Set(ctx context.Context, key string, e cache.Entry) error {
	hashKey := hashKey(key)
	invalidated := "0"
	if e.Invalidated {
		invalidated = "1"
	}
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, map[string]interface{}{
			"data":        string(e.Data),
			"fetched_at":  e.FetchedAt.UnixMilli(),
			"invalidated": invalidated,
		})
		pipe.Expire(ctx, hashKey, b.gcTime)
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, hashKey(key)).Err(); err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}
	return nil
}

// Count returns the number of cached entries
func (b *Backend) Count(ctx context.Context) (int64, error) {
	var cursor uint64
	var n int64
	for {
		keys, next, err := b.client.Scan(ctx, cursor, keyPrefix+":*", 1000).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("scanning cache keys: %w", err)
		}
		n += int64(len(keys))
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return n, nil
}

func (b *Backend) Close() error {
	return b.client.Close()
}

func hashKey(key string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, key)
}
