package lifetimer

// NoOpLifetimer is used when the lifetime section is absent: stale entries
// are then dropped lazily on access only.
type NoOpLifetimer struct{}

func (NoOpLifetimer) LifetimerMetrics() (sweeps, expired, hits, misses int64) {
	return 0, 0, 0, 0
}

func (NoOpLifetimer) Close() error { return nil }
