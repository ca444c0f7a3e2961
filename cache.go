// Package imgcache is a bounded, time-expiring image cache. It maps resource
// URLs to locally held payloads and hands out revocable handles for them,
// so that repeated views of the same image never hit the network twice.
package imgcache

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/Borislavv/go-image-cache/internal/cache/db/dump"
	"github.com/Borislavv/go-image-cache/internal/evictor"
	"github.com/Borislavv/go-image-cache/internal/fetcher"
	"github.com/Borislavv/go-image-cache/internal/lifetimer"
	"github.com/Borislavv/go-image-cache/internal/telemetry"
	"github.com/rs/zerolog"
)

// Stats is a point-in-time view of the cache.
type Stats = cache.Stats

type ImageCache interface {
	cache.Cacher
	evictor.Evictor
	lifetimer.Lifetimer
	telemetry.Logger
	io.Closer
}

type Cache struct {
	*cache.Cache
	evictor.Evictor
	lifetimer.Lifetimer
	telemetry.Logger

	logger *zerolog.Logger
	dumper *dump.Dump // nil when persistence is disabled
	warmup sync.WaitGroup
	cls    context.CancelFunc
	once   sync.Once
}

// New builds the cache and starts its background workers. cfg must be adjusted
// (config.LoadConfig and config.Default do that). A nil logger discards logs.
func New(ctx context.Context, cfg *config.Cache, logger *zerolog.Logger, opts ...Option) *Cache {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	o := newOptions(opts...)

	ctx, cancel := context.WithCancel(ctx)

	var f fetcher.Fetcher = o.fetcher
	if f == nil {
		f = fetcher.NewHTTP(ctx, cfg.Fetch, logger, o.client)
	}

	cacher := cache.New(ctx, cfg, logger, o.clock, f)
	c := &Cache{Cache: cacher, logger: logger, cls: cancel}

	if cfg.Persistence.Enabled() {
		c.dumper = dump.New(cfg.Persistence, logger)
		if err := c.dumper.Load(ctx, cacher); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Info().Str("file", c.dumper.Path()).Msg("no dump to restore, starting cold")
			} else {
				logger.Warn().Err(err).Msg("restoring dump failed")
			}
		}
	}

	c.Evictor = evictor.New(ctx, cfg.Eviction, logger, o.clock, cacher)
	c.Lifetimer = lifetimer.New(ctx, cfg.Lifetime, logger, o.clock, cacher)
	c.Logger = telemetry.New(ctx, cfg, logger, o.clock, cacher, c.Evictor, c.Lifetimer, f)

	if cfg.Preload.Enabled() {
		c.warmup.Go(func() {
			handles := cacher.PreloadAll(ctx, cfg.Preload.URLs)
			var ok int
			for i, h := range handles {
				if h != cfg.Preload.URLs[i] {
					ok++
				}
			}
			logger.Info().Int("requested", len(handles)).Int("cached", ok).Msg("critical images preloaded")
		})
	}

	return c
}

// Close stops background workers, dumps entries if persistence is enabled and
// revokes every handle. It is idempotent.
func (c *Cache) Close() error {
	var err error
	c.once.Do(func() {
		c.cls()
		c.warmup.Wait()

		err = errors.Join(c.Logger.Close(), c.Lifetimer.Close(), c.Evictor.Close())

		if c.dumper != nil {
			if derr := c.dumper.Dump(context.Background(), c.Cache); derr != nil {
				c.logger.Error().Err(derr).Msg("dumping cache failed")
				err = errors.Join(err, derr)
			}
		}

		c.Cache.Clear()
	})
	return err
}
