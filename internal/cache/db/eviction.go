package db

import (
	"cmp"
	"slices"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
)

// EvictUntilWithinLimit removes the lowest scored entries while the total payload
// weight exceeds limit, removing at most backoff entries per call.
func (m *Map) EvictUntilWithinLimit(now time.Time, limit, backoff int64) (freed, evicted int64) {
	if m.Mem() <= limit || m.Len() == 0 {
		return 0, 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.mem.Load()
	n := m.evictLocked(now, func() bool { return m.mem.Load() <= limit }, int(backoff))
	return before - m.mem.Load(), int64(n)
}

// Victims returns entries ordered from the first to be evicted to the last.
func (m *Map) Victims(now time.Time) []*model.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.victimsLocked(now)
}

// evictLocked removes victims in order until done reports true or max entries were removed.
func (m *Map) evictLocked(now time.Time, done func() bool, max int) (evicted int) {
	for _, victim := range m.victimsLocked(now) {
		if done() || evicted >= max {
			break
		}
		m.removeLocked(victim, Evicted)
		evicted++
	}
	return evicted
}

// victimsLocked sorts by score (accessCount - ageInHours) ascending.
// Equal scores are broken by insertion order, older first.
func (m *Map) victimsLocked(now time.Time) []*model.Entry {
	type scored struct {
		e     *model.Entry
		score float64
	}

	list := make([]scored, 0, len(m.items))
	for _, e := range m.items {
		list = append(list, scored{e: e, score: e.Score(now)})
	}
	slices.SortFunc(list, func(a, b scored) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return cmp.Compare(a.e.Seq(), b.e.Seq())
	})

	out := make([]*model.Entry, len(list))
	for i, s := range list {
		out[i] = s.e
	}
	return out
}
