package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const DefaultStaleTime = 5 * time.Minute

// ErrClosed is returned by reads issued after Close.
var ErrClosed = errors.New("cache store closed")

// Stats counts store activity since creation.
type Stats struct {
	Hits          int64 `json:"hits"`
	StaleHits     int64 `json:"staleHits"`
	Misses        int64 `json:"misses"`
	Fetches       int64 `json:"fetches"`
	FetchErrors   int64 `json:"fetchErrors"`
	SharedWaits   int64 `json:"sharedWaits"`
	Invalidations int64 `json:"invalidations"`
	Refreshes     int64 `json:"refreshes"`
}

type counters struct {
	hits, staleHits, misses, fetches, fetchErrors, sharedWaits, invalidations, refreshes atomic.Int64
}

/* Store is the process-wide query cache.
 *
 * Reads go through Fetch. A fresh entry is served as is; a time-stale entry is served
 * and refreshed in the background; a miss or an invalidated entry blocks on one fetch
 * shared by every concurrent reader of the key.
 *
 * Every key has a generation, bumped by Invalidate. A fetch records the generation it
 * started under and, if it changed meanwhile, its result is stored as invalidated.
 */
type Store struct {
	backend   Backend
	staleTime time.Duration
	now       func() time.Time
	logger    zerolog.Logger

	group singleflight.Group
	wg    sync.WaitGroup

	mu          sync.Mutex
	generations map[string]uint64
	refreshing  map[string]bool
	keyLocks    map[string]*sync.Mutex
	lastErr     map[string]error
	closed      bool

	stats counters
}

type Option func(*Store)

// WithStaleTime sets how long an entry is served without a refetch.
func WithStaleTime(d time.Duration) Option {
	return func(s *Store) {
		s.staleTime = d
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:     backend,
		staleTime:   DefaultStaleTime,
		now:         time.Now,
		logger:      zerolog.Nop(),
		generations: make(map[string]uint64),
		refreshing:  make(map[string]bool),
		keyLocks:    make(map[string]*sync.Mutex),
		lastErr:     make(map[string]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch reads key through the store, calling fetch when the cached copy cannot be used.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	raw := func(ctx context.Context) (json.RawMessage, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", key, err)
		}
		return data, nil
	}
	data, err := s.read(ctx, key, raw)
	if err != nil {
		return zero, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("decoding %s: %w", key, err)
	}
	return v, nil
}

type fetchFunc func(ctx context.Context) (json.RawMessage, error)

func (s *Store) read(ctx context.Context, key Key, fetch fetchFunc) (json.RawMessage, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	k := key.String()
	e, ok := s.lookup(ctx, k)
	if ok && !e.Invalidated {
		if s.isFresh(e) {
			s.stats.hits.Add(1)
			return e.Data, nil
		}
		s.stats.staleHits.Add(1)
		s.refresh(k, fetch)
		return e.Data, nil
	}
	s.stats.misses.Add(1)
	return s.load(ctx, k, fetch)
}

// load blocks on the shared fetch for k. The fetch itself outlives ctx.
func (s *Store) load(ctx context.Context, k string, fetch fetchFunc) (json.RawMessage, error) {
	gen := s.generation(k)
	ch := s.group.DoChan(flightKey(k, gen), s.flight(k, gen, fetch, context.WithoutCancel(ctx)))
	select {
	case res := <-ch:
		if res.Shared {
			s.stats.sharedWaits.Add(1)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// refresh starts one background refetch of k unless one is already running.
func (s *Store) refresh(k string, fetch fetchFunc) {
	s.mu.Lock()
	if s.closed || s.refreshing[k] {
		s.mu.Unlock()
		return
	}
	s.refreshing[k] = true
	gen := s.generations[k]
	s.wg.Add(1)
	s.mu.Unlock()

	s.stats.refreshes.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.refreshing, k)
			s.mu.Unlock()
		}()
		res := <-s.group.DoChan(flightKey(k, gen), s.flight(k, gen, fetch, context.Background()))
		if res.Err != nil {
			s.logger.Warn().Err(res.Err).Str("key", k).Msg("background refresh failed")
		}
	}()
}

func (s *Store) flight(k string, gen uint64, fetch fetchFunc, ctx context.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		// a flight that just finished may already have stored a fresh copy
		if e, ok := s.lookup(ctx, k); ok && !e.Invalidated && s.isFresh(e) {
			return e.Data, nil
		}
		s.stats.fetches.Add(1)
		data, err := fetch(ctx)
		if err != nil {
			s.stats.fetchErrors.Add(1)
			s.mu.Lock()
			s.lastErr[k] = err
			s.mu.Unlock()
			return nil, err
		}
		s.save(ctx, k, gen, data)
		return data, nil
	}
}

func (s *Store) save(ctx context.Context, k string, gen uint64, data json.RawMessage) {
	l := s.keyLock(k)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	delete(s.lastErr, k)
	outdated := s.generations[k] != gen
	s.mu.Unlock()
	if outdated {
		// a newer fetch already stored usable data
		if cur, ok, err := s.backend.Get(ctx, k); err == nil && ok && !cur.Invalidated {
			return
		}
	}
	e := Entry{
		Data:        data,
		FetchedAt:   s.now(),
		Invalidated: outdated,
	}
	if err := s.backend.Set(ctx, k, e); err != nil {
		s.logger.Error().Err(err).Str("key", k).Msg("storing cache entry")
	}
}

/* Invalidate marks keys invalidated. Reads issued after it returns never observe the
 * previous data as fresh and never join a fetch that started before it.
 *
 * Generations are bumped for every key before the backend is touched. An entry that
 * cannot be marked is deleted instead; the error lists the keys where both failed.
 */
func (s *Store) Invalidate(ctx context.Context, keys ...Key) error {
	s.mu.Lock()
	for _, key := range keys {
		s.generations[key.String()]++
	}
	s.mu.Unlock()

	var errs []error
	for _, key := range keys {
		s.stats.invalidations.Add(1)
		if err := s.invalidate(ctx, key.String()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) invalidate(ctx context.Context, k string) error {
	l := s.keyLock(k)
	l.Lock()
	defer l.Unlock()

	err := s.markInvalidated(ctx, k)
	if err == nil {
		return nil
	}
	if delErr := s.backend.Delete(ctx, k); delErr != nil {
		return fmt.Errorf("invalidating %s: %w", k, errors.Join(err, delErr))
	}
	s.logger.Warn().Err(err).Str("key", k).Msg("cache entry dropped instead of invalidated")
	return nil
}

func (s *Store) markInvalidated(ctx context.Context, k string) error {
	e, ok, err := s.backend.Get(ctx, k)
	if err != nil {
		return err
	}
	if !ok || e.Invalidated {
		return nil
	}
	e.Invalidated = true
	return s.backend.Set(ctx, k, e)
}

// Peek returns the entry for key without fetching or touching the statistics.
func (s *Store) Peek(ctx context.Context, key Key) (Snapshot, bool) {
	k := key.String()
	e, ok := s.lookup(ctx, k)
	if !ok {
		return Snapshot{}, false
	}
	s.mu.Lock()
	lastErr := s.lastErr[k]
	s.mu.Unlock()
	status := Fresh
	switch {
	case e.Invalidated:
		status = Invalidated
	case !s.isFresh(e):
		status = Stale
	}
	return Snapshot{Key: key, Data: e.Data, FetchedAt: e.FetchedAt, Status: status, Err: lastErr}, true
}

func (s *Store) Stats() Stats {
	return Stats{
		Hits:          s.stats.hits.Load(),
		StaleHits:     s.stats.staleHits.Load(),
		Misses:        s.stats.misses.Load(),
		Fetches:       s.stats.fetches.Load(),
		FetchErrors:   s.stats.fetchErrors.Load(),
		SharedWaits:   s.stats.sharedWaits.Load(),
		Invalidations: s.stats.invalidations.Load(),
		Refreshes:     s.stats.refreshes.Load(),
	}
}

// Close waits for background refreshes and releases the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("closing cache backend: %w", err)
	}
	return nil
}

func (s *Store) lookup(ctx context.Context, k string) (Entry, bool) {
	e, ok, err := s.backend.Get(ctx, k)
	if err != nil {
		s.logger.Error().Err(err).Str("key", k).Msg("reading cache entry")
		return Entry{}, false
	}
	return e, ok
}

func (s *Store) isFresh(e Entry) bool {
	return s.now().Sub(e.FetchedAt) <= s.staleTime
}

func (s *Store) generation(k string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[k]
}

// keyLock serializes backend writes for k. s.mu is never held across backend I/O.
func (s *Store) keyLock(k string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.keyLocks[k]
	if !ok {
		l = &sync.Mutex{}
		s.keyLocks[k] = l
	}
	return l
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func flightKey(k string, gen uint64) string {
	return k + "#" + strconv.FormatUint(gen, 10)
}
