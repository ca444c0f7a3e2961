package telemetry

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/Borislavv/go-image-cache/internal/evictor"
	"github.com/Borislavv/go-image-cache/internal/lifetimer"
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type stubCache struct{ cache.Cacher }

func (stubCache) Len() int64 { return 3 }
func (stubCache) Mem() int64 { return 2048 }
func (stubCache) CacheMetrics() (hits, misses, fetches, fetchFailures, evicted, expired int64) {
	return 5, 2, 2, 0, 1, 0
}

type stubFetcher struct{}

func (stubFetcher) FetcherMetrics() (fetches, failures, bytes int64) { return 2, 1, 4096 }

// TestLogs_WritesStorageLine logs storage stats every interval.
func TestLogs_WritesStorageLine(t *testing.T) {
	out := &syncBuffer{}
	logger := zerolog.New(out)
	clk := clock.NewMock()

	cfg := &config.Cache{DB: config.DBCfg{IsTelemetryLogsEnabled: true, TelemetryLogsInterval: 5 * time.Second}}
	cfg.AdjustConfig()

	l := New(context.Background(), cfg, &logger, clk, stubCache{}, evictor.NoOpEvictor{}, lifetimer.NoOpLifetimer{}, stubFetcher{})
	defer func() { _ = l.Close() }()
	require.Equal(t, 5*time.Second, l.Interval())

	clk.Add(5 * time.Second)
	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte(`"message":"storage"`))
	}, time.Second, time.Millisecond)

	require.Contains(t, out.String(), `"size":"2KB 0B"`)
	require.Contains(t, out.String(), `"entries":3`)
	require.NotContains(t, out.String(), "soft_evictor")
}

// TestLogs_Disabled writes nothing and closes immediately.
func TestLogs_Disabled(t *testing.T) {
	out := &syncBuffer{}
	logger := zerolog.New(out)
	clk := clock.NewMock()

	cfg := config.Default()
	l := New(context.Background(), cfg, &logger, clk, stubCache{}, evictor.NoOpEvictor{}, lifetimer.NoOpLifetimer{}, nil)

	clk.Add(time.Minute)
	require.NoError(t, l.Close())
	require.Empty(t, out.String())
}

// TestDeltaSnapshot handles counter resets.
func TestDeltaSnapshot(t *testing.T) {
	prev := snapshot{hits: 10, misses: 4}
	cur := snapshot{hits: 15, misses: 2}

	d := deltaSnapshot(prev, cur)
	require.Equal(t, uint64(5), d.hits)
	require.Equal(t, uint64(2), d.misses)
}
