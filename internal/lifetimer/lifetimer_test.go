package lifetimer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls atomic.Int64
	next  atomic.Int64
}

func (f *fakeSweeper) ExpireStaleEntries() int {
	f.calls.Add(1)
	return int(f.next.Swap(0))
}

func newWorker(t *testing.T, ctx context.Context, clk clock.Clock, s Sweeper) *LifetimeWorker {
	t.Helper()
	logger := zerolog.Nop()
	w := New(ctx, &config.LifetimerCfg{SweepInterval: 30 * time.Minute}, &logger, clk, s).(*LifetimeWorker)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

// TestNew_Disabled returns a no-op lifetimer.
func TestNew_Disabled(t *testing.T) {
	logger := zerolog.Nop()
	lt := New(context.Background(), nil, &logger, clock.NewMock(), &fakeSweeper{})

	require.IsType(t, &NoOpLifetimer{}, lt)
	sweeps, expired, hits, misses := lt.LifetimerMetrics()
	require.Zero(t, sweeps+expired+hits+misses)
	require.NoError(t, lt.Close())
}

// TestLifetimeWorker_SweepsOnInterval sweeps once per interval.
func TestLifetimeWorker_SweepsOnInterval(t *testing.T) {
	clk := clock.NewMock()
	s := &fakeSweeper{}
	w := newWorker(t, context.Background(), clk, s)

	clk.Add(29 * time.Minute)
	require.Zero(t, s.calls.Load())

	s.next.Store(3)
	clk.Add(time.Minute)
	require.Eventually(t, func() bool { return s.calls.Load() == 1 }, time.Second, time.Millisecond)

	clk.Add(30 * time.Minute)
	require.Eventually(t, func() bool { return s.calls.Load() == 2 }, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		sweeps, expired, hits, misses := w.LifetimerMetrics()
		return sweeps == 2 && expired == 3 && hits == 1 && misses == 1
	}, time.Second, time.Millisecond)
}

// TestLifetimeWorker_Close stops sweeping.
func TestLifetimeWorker_Close(t *testing.T) {
	clk := clock.NewMock()
	s := &fakeSweeper{}
	w := newWorker(t, context.Background(), clk, s)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	clk.Add(time.Hour)
	require.Never(t, func() bool { return s.calls.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

// TestLifetimeWorker_ParentContext stops with the parent context.
func TestLifetimeWorker_ParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := newWorker(t, ctx, clock.NewMock(), &fakeSweeper{})

	cancel()
	select {
	case <-w.done:
	case <-time.After(time.Second):
		t.Fatal("lifetimer should stop with its parent context")
	}
}
