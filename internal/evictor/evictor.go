package evictor

import (
	"context"
	"errors"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

var ErrEvictorNotResponded = errors.New("evictor not responded")

type Evictor interface {
	ForceCall(timeout time.Duration) error
	EvictorMetrics() (scans, hits, evictedItems, evictedBytes int64)
	Close() error
}

// Target is the store the evictor keeps under the soft memory limit.
type Target interface {
	Len() int64
	Mem() int64
	SoftMemoryLimitOvercome() bool
	SoftEvictUntilWithinLimit(backoff int64) (freed, evicted int64)
}

type EvictionWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.EvictionCfg
	logger   *zerolog.Logger
	target   Target
	ticker   *clock.Ticker
	counters *evictorCounters
	invokeCh chan struct{}
	done     chan struct{}
}

func New(
	ctx context.Context,
	cfg *config.EvictionCfg,
	logger *zerolog.Logger,
	clk clock.Clock,
	target Target,
) Evictor {
	if !cfg.Enabled() {
		return &NoOpEvictor{}
	}

	callsPerSec := cfg.CallsPerSec
	if callsPerSec <= 0 {
		callsPerSec = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&EvictionWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		target:   target,
		ticker:   clk.Ticker(time.Second / time.Duration(callsPerSec)),
		counters: newEvictorCounters(),
		invokeCh: make(chan struct{}),
		done:     make(chan struct{}),
	}).run()
}

// ForceCall asks the worker for an eviction pass and waits until it is accepted.
func (w *EvictionWorker) ForceCall(timeout time.Duration) error {
	after := time.NewTimer(timeout)
	defer after.Stop()

	select {
	case <-w.ctx.Done():
	case w.invokeCh <- struct{}{}:
	case <-after.C:
		return ErrEvictorNotResponded
	}
	return nil
}

func (w *EvictionWorker) EvictorMetrics() (scans, hits, evictedItems, evictedBytes int64) {
	return w.counters.snapshot()
}

// Close stops the worker and waits for it to exit.
func (w *EvictionWorker) Close() error {
	w.cancel()
	<-w.done
	return nil
}

func (w *EvictionWorker) run() *EvictionWorker {
	w.logger.Info().
		Int64("calls_per_sec", w.cfg.CallsPerSec).
		Int64("backoff_spins", w.cfg.BackoffSpinsPerCall).
		Str("soft_limit", fmtLimit(w.cfg.SoftMemoryLimitBytes)).
		Msg("evictor is running")

	go func() {
		defer close(w.done)
		defer w.logger.Info().Msg("evictor is stopped")
		defer w.ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-w.ticker.C:
				if w.target.Len() > 0 && w.target.Mem() > 0 {
					w.counters.scans.Add(1)
					if w.target.SoftMemoryLimitOvercome() {
						w.counters.scanHits.Add(1)
						w.evict()
					}
				}
			case <-w.invokeCh:
				w.evict()
			}
		}
	}()

	return w
}

// evict removes lowest scored entries until within limit or backoff by spins.
func (w *EvictionWorker) evict() {
	if w.target.Len() == 0 || w.target.Mem() == 0 {
		return
	}
	freedBytes, items := w.target.SoftEvictUntilWithinLimit(w.cfg.BackoffSpinsPerCall)
	if items > 0 || freedBytes > 0 {
		w.counters.evictedItems.Add(items)
		w.counters.evictedBytes.Add(freedBytes)
		w.logger.Debug().Int64("items", items).Int64("bytes", freedBytes).Msg("soft eviction")
	}
}
