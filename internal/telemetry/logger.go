package telemetry

import (
	"context"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/Borislavv/go-image-cache/internal/evictor"
	"github.com/Borislavv/go-image-cache/internal/lifetimer"
	"github.com/Borislavv/go-image-cache/internal/shared/bytes"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

// FetchMetrics is implemented by fetchers that count their traffic.
type FetchMetrics interface {
	FetcherMetrics() (fetches, failures, bytes int64)
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Cache
	logger   *zerolog.Logger
	clock    clock.Clock
	sampler  sampler
	cache    cache.Cacher
	interval time.Duration
	done     chan struct{}
}

func New(
	ctx context.Context,
	cfg *config.Cache,
	logger *zerolog.Logger,
	clk clock.Clock,
	cache cache.Cacher,
	evictor evictor.Evictor,
	lifetimer lifetimer.Lifetimer,
	fetcher any,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	fm, _ := fetcher.(FetchMetrics)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		clock:    clk,
		cache:    cache,
		sampler:  newSampler(cache, evictor, lifetimer, fm),
		interval: cfg.DB.TelemetryLogsInterval,
		done:     make(chan struct{}),
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	<-l.done
	return nil
}

func (l *Logs) run() *Logs {
	if !l.cfg.DB.IsTelemetryLogsEnabled || l.interval <= 0 {
		close(l.done)
		return l
	}

	ticker := l.clock.Ticker(l.interval)
	go func() {
		defer close(l.done)
		defer ticker.Stop()
		l.loop(ticker.C)
	}()
	return l
}

func (l *Logs) loop(tick <-chan time.Time) {
	var softLimit = "INF"
	if l.cfg.Eviction.Enabled() {
		softLimit = bytes.FmtMem(uint64(l.cfg.Eviction.SoftMemoryLimitBytes))
	}

	prev := l.sampler.snapshot()
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-tick:
			cur := l.sampler.snapshot()
			l.write(deltaSnapshot(prev, cur), softLimit)
			prev = cur
		}
	}
}

func (l *Logs) write(d snapshot, softLimit string) {
	interval := l.interval.String()

	if l.cfg.Lifetime.Enabled() {
		l.logger.Info().
			Str("interval", interval).
			Uint64("sweeps", d.sweeps).
			Uint64("expired", d.sweepExpired).
			Uint64("hits", d.sweepHits).
			Uint64("misses", d.sweepMisses).
			Msg("lifetime_manager")
	}

	if l.cfg.Eviction.Enabled() {
		l.logger.Info().
			Str("interval", interval).
			Uint64("scans", d.softScans).
			Uint64("hits", d.softHits).
			Uint64("freed_items", d.softEvictedItems).
			Str("freed_bytes", bytes.FmtMem(d.softEvictedBytes)).
			Msg("soft_evictor")
	}

	if d.fetches > 0 || d.fetchFailures > 0 {
		l.logger.Info().
			Str("interval", interval).
			Uint64("fetches", d.fetches).
			Uint64("failures", d.fetchFailures).
			Str("received", bytes.FmtMem(d.fetchedBytes)).
			Msg("fetcher")
	}

	l.logger.Info().
		Str("interval", interval).
		Str("size", bytes.FmtMem(uint64(max(l.cache.Mem(), 0)))).
		Int64("entries", l.cache.Len()).
		Int("max_entries", l.cfg.DB.MaxEntries).
		Uint64("hits", d.hits).
		Uint64("misses", d.misses).
		Uint64("evicted", d.evicted).
		Uint64("expired", d.expired).
		Str("soft_limit", softLimit).
		Msg("storage")
}
