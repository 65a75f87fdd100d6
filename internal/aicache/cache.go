// Package aicache memoizes AI provider responses keyed by a hash of the
// normalized request. The cache is best-effort: read failures are misses
// and write failures are logged and dropped.
package aicache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vadea/vadea-backend/internal/domain"
)

// Store persists cache entries. Get returns domain.ErrNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)
	Upsert(ctx context.Context, entry *domain.CacheEntry) error
	IncrementHits(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Options configures a Cache.
type Options struct {
	// TTL is the default lifetime of stored entries.
	TTL time.Duration
	// WriteTimeout bounds each background store.
	WriteTimeout time.Duration
}

// Cache is the response cache in front of the AI provider.
type Cache struct {
	store Store
	clock clockwork.Clock
	log   *slog.Logger
	opts  Options

	pending sync.WaitGroup
}

// New creates a Cache over store.
func New(store Store, clock clockwork.Clock, log *slog.Logger, opts Options) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	return &Cache{
		store: store,
		clock: clock,
		log:   log.With("component", "aicache"),
		opts:  opts,
	}
}

// Get returns the payload stored under key while it is live.
// Any store error is reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	if !entry.IsLive(c.clock.Now()) {
		return nil, false
	}

	c.background(ctx, func(bgCtx context.Context) {
		if err := c.store.IncrementHits(bgCtx, key); err != nil {
			c.log.WarnContext(bgCtx, "cache hit count failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	})

	return entry.Payload, true
}

// Put stores payload under key for ttl, overwriting any previous entry.
// A non-positive ttl uses the configured default. Errors are logged, never returned.
func (c *Cache) Put(ctx context.Context, endpoint, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.opts.TTL
	}
	now := c.clock.Now()
	err := c.store.Upsert(ctx, &domain.CacheEntry{
		Key:       key,
		Endpoint:  endpoint,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		c.log.WarnContext(ctx, "cache put failed",
			slog.String("endpoint", endpoint),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Purge removes expired entries from the store.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	return c.store.DeleteExpired(ctx, c.clock.Now())
}

// Wait blocks until all background writes have finished.
func (c *Cache) Wait() {
	c.pending.Wait()
}

// background runs fn detached from ctx cancellation, bounded by WriteTimeout.
func (c *Cache) background(ctx context.Context, fn func(ctx context.Context)) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.WriteTimeout)
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		defer cancel()
		fn(bgCtx)
	}()
}

// WithCache returns the cached result for (endpoint, params) if present.
// Otherwise it calls op, returns its result right away and stores it in the
// background. The bool result reports whether the value came from the cache.
func WithCache[T any](
	ctx context.Context,
	c *Cache,
	endpoint string,
	params any,
	op func(ctx context.Context) (T, error),
) (T, bool, error) {
	key, err := Key(endpoint, params)
	if err != nil {
		c.log.WarnContext(ctx, "cache key failed, bypassing cache",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		v, opErr := op(ctx)
		return v, false, opErr
	}

	if payload, ok := c.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, true, nil
		}
		c.log.WarnContext(ctx, "cache payload undecodable, treating as miss", slog.String("key", key))
	}

	v, err := op(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return v, false, nil
	}

	c.background(ctx, func(bgCtx context.Context) {
		c.Put(bgCtx, endpoint, key, payload, 0)
	})

	return v, false, nil
}
