package telemetry

import (
	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/Borislavv/go-image-cache/internal/evictor"
	"github.com/Borislavv/go-image-cache/internal/lifetimer"
)

type sampler struct {
	cache     cache.Cacher
	evictor   evictor.Evictor
	lifetimer lifetimer.Lifetimer
	fetcher   FetchMetrics // may be nil
}

func newSampler(c cache.Cacher, e evictor.Evictor, lt lifetimer.Lifetimer, f FetchMetrics) sampler {
	return sampler{cache: c, evictor: e, lifetimer: lt, fetcher: f}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	hits    uint64
	misses  uint64
	evicted uint64
	expired uint64

	softScans        uint64
	softHits         uint64
	softEvictedItems uint64
	softEvictedBytes uint64

	sweeps       uint64
	sweepExpired uint64
	sweepHits    uint64
	sweepMisses  uint64

	fetches       uint64
	fetchFailures uint64
	fetchedBytes  uint64
}

func (s sampler) snapshot() snapshot {
	hits, misses, _, _, evicted, expired := s.cache.CacheMetrics()
	softScans, softHits, softItems, softBytes := s.evictor.EvictorMetrics()
	sweeps, sweepExpired, sweepHits, sweepMisses := s.lifetimer.LifetimerMetrics()

	var fetches, failures, fetched int64
	if s.fetcher != nil {
		fetches, failures, fetched = s.fetcher.FetcherMetrics()
	}

	return snapshot{
		hits:    u(hits),
		misses:  u(misses),
		evicted: u(evicted),
		expired: u(expired),

		softScans:        u(softScans),
		softHits:         u(softHits),
		softEvictedItems: u(softItems),
		softEvictedBytes: u(softBytes),

		sweeps:       u(sweeps),
		sweepExpired: u(sweepExpired),
		sweepHits:    u(sweepHits),
		sweepMisses:  u(sweepMisses),

		fetches:       u(fetches),
		fetchFailures: u(failures),
		fetchedBytes:  u(fetched),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		hits:    delta(prev.hits, cur.hits),
		misses:  delta(prev.misses, cur.misses),
		evicted: delta(prev.evicted, cur.evicted),
		expired: delta(prev.expired, cur.expired),

		softScans:        delta(prev.softScans, cur.softScans),
		softHits:         delta(prev.softHits, cur.softHits),
		softEvictedItems: delta(prev.softEvictedItems, cur.softEvictedItems),
		softEvictedBytes: delta(prev.softEvictedBytes, cur.softEvictedBytes),

		sweeps:       delta(prev.sweeps, cur.sweeps),
		sweepExpired: delta(prev.sweepExpired, cur.sweepExpired),
		sweepHits:    delta(prev.sweepHits, cur.sweepHits),
		sweepMisses:  delta(prev.sweepMisses, cur.sweepMisses),

		fetches:       delta(prev.fetches, cur.fetches),
		fetchFailures: delta(prev.fetchFailures, cur.fetchFailures),
		fetchedBytes:  delta(prev.fetchedBytes, cur.fetchedBytes),
	}
}

func u(v int64) uint64 { return uint64(max(v, 0)) }

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
