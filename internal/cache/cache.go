package cache

import (
	"context"
	"fmt"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/cache/db"
	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
	"github.com/Borislavv/go-image-cache/internal/fetcher"
	"github.com/Borislavv/go-image-cache/internal/handle"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type Cacher interface {
	Preload(ctx context.Context, url string) string
	PreloadAll(ctx context.Context, urls []string) []string
	CachedHandle(url string) (handle string, ok bool)
	Resolve(handle string) ([]byte, bool)
	ExpireStaleEntries() int
	Clear()
	Stats() Stats
	CacheMetrics() (hits, misses, fetches, fetchFailures, evicted, expired int64)
	Len() int64
	Mem() int64
}

// Cache is the image cache core: a bounded store of fetched payloads keyed by
// resource URL, handing out revocable handles for them.
//
// Cache respects given ctx: it bounds every shared fetch.
type Cache struct {
	ctx      context.Context
	cfg      *config.Cache
	clock    clock.Clock
	db       *db.Map
	handles  *handle.Registry
	fetcher  fetcher.Fetcher
	inflight singleflight.Group
	logger   *zerolog.Logger
	counters *counters
}

func New(ctx context.Context, cfg *config.Cache, logger *zerolog.Logger, clk clock.Clock, f fetcher.Fetcher) *Cache {
	c := &Cache{
		ctx:      ctx,
		cfg:      cfg,
		clock:    clk,
		fetcher:  f,
		logger:   logger,
		counters: newCounters(),
		handles:  handle.NewRegistry(cfg.Handles.BaseURL),
	}
	c.db = db.NewMap(cfg.DB.MaxEntries, cfg.DB.EvictTarget, c.onRemove)
	return c
}

// fetched is the result shared by every caller coalesced on one URL.
type fetched struct {
	entry *model.Entry
	fresh bool // false when the entry was already stored by a concurrent preload
}

// Preload returns a handle for url, fetching it when no valid entry is cached.
// It never fails: on any error the original url is returned.
func (c *Cache) Preload(ctx context.Context, url string) string {
	if url == "" {
		return url
	}
	if h, ok := c.CachedHandle(url); ok {
		return h
	}

	var leader bool
	ch := c.inflight.DoChan(url, func() (any, error) {
		leader = true
		return c.fetchAndStore(url)
	})

	select {
	case <-ctx.Done():
		c.logger.Warn().Err(ctx.Err()).Str("url", url).Msg("preload abandoned, serving original url")
		return url
	case res := <-ch:
		if res.Err != nil {
			c.logger.Warn().Err(res.Err).Str("url", url).Msg("image fetch failed, serving original url")
			return url
		}

		f := res.Val.(fetched)
		if leader && f.fresh {
			if h, ok := c.db.Attach(f.entry, c.issue); ok {
				return h
			}
			c.logger.Warn().Str("url", url).Msg("fetched image was evicted before use, serving original url")
			return url
		}

		if !leader {
			c.counters.coalesced.Add(1)
		}
		if h, lookup := c.db.Acquire(url, c.clock.Now(), c.cfg.DB.MaxAge, c.issue); lookup == db.Hit {
			return h
		}
		c.logger.Warn().Str("url", url).Msg("shared image was evicted before use, serving original url")
		return url
	}
}

// PreloadAll preloads urls concurrently. The result is index-aligned with urls,
// a failed url degrades only its own slot.
func (c *Cache) PreloadAll(ctx context.Context, urls []string) []string {
	out := make([]string, len(urls))

	var g errgroup.Group
	g.SetLimit(c.cfg.Fetch.Concurrency)
	for i, url := range urls {
		g.Go(func() error {
			out[i] = c.Preload(ctx, url)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// CachedHandle returns a fresh handle for url if a valid entry is cached. It never
// fetches. A hit counts as an access; an expired entry is removed.
func (c *Cache) CachedHandle(url string) (string, bool) {
	h, lookup := c.db.Acquire(url, c.clock.Now(), c.cfg.DB.MaxAge, c.issue)
	switch lookup {
	case db.Hit:
		c.counters.hits.Add(1)
		return h, true
	case db.Stale:
		c.logger.Debug().Str("url", url).Msg("expired image dropped on access")
	}
	c.counters.misses.Add(1)
	return "", false
}

func (c *Cache) Resolve(handle string) ([]byte, bool) {
	return c.handles.Resolve(handle)
}

// ExpireStaleEntries removes every entry older than the configured max age.
func (c *Cache) ExpireStaleEntries() int {
	n := c.db.ExpireStale(c.clock.Now(), c.cfg.DB.MaxAge)
	if n > 0 {
		c.logger.Debug().Int("expired", n).Msg("stale images swept")
	}
	return n
}

// Clear empties the store, revoking the handles of every removed entry. It is
// idempotent. Entries stored by preloads racing with Clear survive it.
func (c *Cache) Clear() {
	n := c.db.Clear()
	c.logger.Debug().Int("removed", n).Msg("image cache cleared")
}

func (c *Cache) Len() int64 { return c.db.Len() }
func (c *Cache) Mem() int64 { return c.db.Mem() }

func (c *Cache) CacheMetrics() (hits, misses, fetches, fetchFailures, evicted, expired int64) {
	return c.counters.snapshot()
}

// SoftEvictUntilWithinLimit evicts lowest scored entries while payloads exceed the soft limit.
func (c *Cache) SoftEvictUntilWithinLimit(backoff int64) (freed, evicted int64) {
	if c.cfg.Eviction.Enabled() {
		freed, evicted = c.db.EvictUntilWithinLimit(c.clock.Now(), c.cfg.Eviction.SoftMemoryLimitBytes, backoff)
	}
	return
}

func (c *Cache) SoftMemoryLimitOvercome() bool {
	return c.cfg.Eviction.Enabled() && c.db.Len() > 0 && c.db.Mem() > c.cfg.Eviction.SoftMemoryLimitBytes
}

// Walk iterates stored entries under a shared lock.
func (c *Cache) Walk(ctx context.Context, fn func(e *model.Entry) bool) {
	c.db.Walk(ctx, fn)
}

// Restore puts a previously dumped entry back, keeping its creation time and
// access count. Expired entries are skipped.
func (c *Cache) Restore(e *model.Entry) bool {
	now := c.clock.Now()
	if e.IsExpired(now, c.cfg.DB.MaxAge) {
		return false
	}
	c.db.Set(e, now)
	_, ok := c.db.Get(e.Key())
	return ok
}

func (c *Cache) fetchAndStore(url string) (fetched, error) {
	// a concurrent preload may have stored url between our miss and this flight
	if e, ok := c.db.Get(url); ok && !e.IsExpired(c.clock.Now(), c.cfg.DB.MaxAge) {
		return fetched{entry: e}, nil
	}

	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.Fetch.Timeout)
	defer cancel()

	c.counters.fetches.Add(1)
	data, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		c.counters.fetchFailures.Add(1)
		return fetched{}, err
	}

	now := c.clock.Now()
	entry := model.NewEntry(url, data, now)
	if evicted := c.db.Set(entry, now); evicted > 0 {
		c.logger.Debug().Str("url", url).Int("evicted", evicted).Msg("capacity eviction")
	}
	return fetched{entry: entry, fresh: true}, nil
}

// issue is called under the store lock.
func (c *Cache) issue(e *model.Entry) string {
	h := c.handles.Issue(e.Key(), e.Payload())
	for _, old := range e.AddHandle(h, c.cfg.Handles.MaxPerEntry) {
		c.revoke(e, old)
		c.counters.retired.Add(1)
	}
	return h
}

// onRemove is called under the store lock for every entry leaving the store.
func (c *Cache) onRemove(e *model.Entry, reason db.Reason) {
	for _, h := range e.TakeHandles() {
		c.revoke(e, h)
	}

	switch reason {
	case db.Evicted:
		c.counters.evicted.Add(1)
	case db.Expired:
		c.counters.expired.Add(1)
	case db.Replaced:
		c.counters.replaced.Add(1)
	}
}

func (c *Cache) revoke(e *model.Entry, h string) {
	if !c.handles.Revoke(h) {
		panic(fmt.Errorf("%w: handle %s of %s revoked twice", db.ErrInvariantViolated, h, e.Key()))
	}
}
