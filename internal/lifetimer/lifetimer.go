package lifetimer

import (
	"context"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

type Lifetimer interface {
	LifetimerMetrics() (sweeps, expired, hits, misses int64)
	Close() error
}

// Sweeper removes expired entries and reports how many were removed.
type Sweeper interface {
	ExpireStaleEntries() int
}

// LifetimeWorker periodically sweeps expired images out of the cache.
type LifetimeWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.LifetimerCfg
	sweeper  Sweeper
	logger   *zerolog.Logger
	ticker   *clock.Ticker
	counters *lifetimerCounters
	done     chan struct{}
}

func New(
	ctx context.Context,
	cfg *config.LifetimerCfg,
	logger *zerolog.Logger,
	clk clock.Clock,
	sweeper Sweeper,
) Lifetimer {
	if !cfg.Enabled() {
		return &NoOpLifetimer{}
	}

	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = config.DefaultSweepInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&LifetimeWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		sweeper:  sweeper,
		logger:   logger,
		ticker:   clk.Ticker(interval),
		counters: newLifetimerCounters(),
		done:     make(chan struct{}),
	}).run(interval)
}

func (w *LifetimeWorker) LifetimerMetrics() (sweeps, expired, hits, misses int64) {
	return w.counters.snapshot()
}

// Close cancels the sweep task and waits for it to exit. It is idempotent.
func (w *LifetimeWorker) Close() error {
	w.cancel()
	<-w.done
	return nil
}

func (w *LifetimeWorker) run(interval time.Duration) *LifetimeWorker {
	w.logger.Info().Str("interval", interval.String()).Msg("lifetimer is running")

	go func() {
		defer close(w.done)
		defer w.logger.Info().Msg("lifetimer is stopped")
		defer w.ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-w.ticker.C:
				w.sweep()
			}
		}
	}()

	return w
}

func (w *LifetimeWorker) sweep() {
	w.counters.sweeps.Add(1)
	n := w.sweeper.ExpireStaleEntries()
	if n == 0 {
		w.counters.misses.Add(1)
		return
	}
	w.counters.hits.Add(1)
	w.counters.expired.Add(int64(n))
	w.logger.Debug().Int("expired", n).Msg("expiry sweep")
}
