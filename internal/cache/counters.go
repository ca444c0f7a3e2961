package cache

import "sync/atomic"

type counters struct {
	hits          atomic.Int64
	misses        atomic.Int64
	fetches       atomic.Int64
	fetchFailures atomic.Int64
	coalesced     atomic.Int64
	evicted       atomic.Int64
	expired       atomic.Int64
	replaced      atomic.Int64
	retired       atomic.Int64 // handles revoked while their entry stayed cached
}

func newCounters() *counters {
	return &counters{}
}

func (c *counters) snapshot() (hits, misses, fetches, fetchFailures, evicted, expired int64) {
	return c.hits.Load(), c.misses.Load(), c.fetches.Load(), c.fetchFailures.Load(), c.evicted.Load(), c.expired.Load()
}
