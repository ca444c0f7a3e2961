package lifetimer

import "sync/atomic"

type lifetimerCounters struct {
	sweeps  atomic.Int64 // total sweeps number
	expired atomic.Int64 // removed entries
	hits    atomic.Int64 // sweeps which removed something
	misses  atomic.Int64 // sweeps which found nothing
}

func newLifetimerCounters() *lifetimerCounters {
	return &lifetimerCounters{}
}

func (c *lifetimerCounters) snapshot() (sweeps, expired, hits, misses int64) {
	return c.sweeps.Load(), c.expired.Load(), c.hits.Load(), c.misses.Load()
}
