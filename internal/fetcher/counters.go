package fetcher

import "sync/atomic"

type counters struct {
	fetches  atomic.Int64
	failures atomic.Int64
	bytes    atomic.Int64
}

func newCounters() *counters {
	return &counters{}
}

func (c *counters) snapshot() (fetches, failures, bytes int64) {
	return c.fetches.Load(), c.failures.Load(), c.bytes.Load()
}
