// Package db is the entry store of the image cache. The store is small (tens of
// images) so a single RWMutex guards it; every mutation that must be atomic with
// respect to the bound (insert-then-evict, hit-then-issue-handle) runs under it.
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
)

// ErrInvariantViolated marks a programming defect. It is only ever panicked with.
var ErrInvariantViolated = errors.New("invariant violated")

// Reason tells OnRemove why an entry left the store.
type Reason uint8

const (
	Replaced Reason = iota
	Evicted
	Expired
	Cleared
	Removed
)

func (r Reason) String() string {
	switch r {
	case Replaced:
		return "replaced"
	case Evicted:
		return "evicted"
	case Expired:
		return "expired"
	case Cleared:
		return "cleared"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// OnRemove is called under the store lock for every entry leaving the store.
// It must not call back into the Map.
type OnRemove func(e *model.Entry, reason Reason)

// Lookup is the outcome of Acquire.
type Lookup uint8

const (
	Miss Lookup = iota
	Hit
	Stale
)

// Map is a bounded map of resource URL to entry with precise counters.
type Map struct {
	mu    sync.RWMutex
	items map[string]*model.Entry

	bound  int // max number of entries
	target int // number of entries left once the bound is overcome, <= bound

	seq uint64       // insertion counter, guarded by mu
	len atomic.Int64 // number of entries
	mem atomic.Int64 // total payload weight in bytes

	onRemove OnRemove
}

// NewMap creates an empty store holding at most bound entries. Once an insert
// overcomes the bound, entries are evicted down to target. onRemove may be nil.
func NewMap(bound, target int, onRemove OnRemove) *Map {
	if target <= 0 || target > bound {
		target = bound
	}
	if onRemove == nil {
		onRemove = func(*model.Entry, Reason) {}
	}
	return &Map{
		items:    make(map[string]*model.Entry, bound+1),
		bound:    bound,
		target:   target,
		onRemove: onRemove,
	}
}

func (m *Map) Bound() int { return m.bound }

func (m *Map) Len() int64 { return m.len.Load() }
func (m *Map) Mem() int64 { return m.mem.Load() }

// Get reads an entry without counting an access.
func (m *Map) Get(key string) (*model.Entry, bool) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	return e, ok
}

// Acquire looks key up and, when a live entry is found, counts an access and lets
// issue attach a handle to it in the same critical section. A stale entry is
// removed and reported as Stale.
func (m *Map) Acquire(key string, now time.Time, maxAge time.Duration, issue func(e *model.Entry) string) (handle string, res Lookup) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return "", Miss
	}
	if e.IsExpired(now, maxAge) {
		m.removeLocked(e, Expired)
		return "", Stale
	}
	e.Touch()
	return issue(e), Hit
}

// Attach issues a handle for e without counting an access, provided e is still the
// stored entry for its key. It reports false when e was evicted or replaced meanwhile.
func (m *Map) Attach(e *model.Entry, issue func(e *model.Entry) string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.items[e.Key()]; !ok || cur != e {
		return "", false
	}
	return issue(e), true
}

// Set inserts e, replacing any entry under the same key. When the bound is overcome
// the lowest scored entries are evicted until target remain; e itself may be among
// them. Returns the number of evicted entries.
func (m *Map) Set(e *model.Entry, now time.Time) (evicted int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.items[e.Key()]; ok {
		m.removeLocked(old, Replaced)
	}

	m.seq++
	e.SetSeq(m.seq)
	m.items[e.Key()] = e
	m.len.Add(1)
	m.mem.Add(e.Weight())

	if len(m.items) > m.bound {
		evicted = m.evictLocked(now, func() bool { return len(m.items) <= m.target }, len(m.items))
	}
	if len(m.items) > m.bound {
		panic(fmt.Errorf("%w: store holds %d entries after eviction, bound is %d", ErrInvariantViolated, len(m.items), m.bound))
	}
	return evicted
}

// Remove deletes key. Returns false when it was absent.
func (m *Map) Remove(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if ok {
		m.removeLocked(e, Removed)
	}
	return ok
}

// ExpireStale removes every entry with age >= maxAge and returns how many were removed.
func (m *Map) ExpireStale(now time.Time, maxAge time.Duration) (expired int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.items {
		if e.IsExpired(now, maxAge) {
			m.removeLocked(e, Expired)
			expired++
		}
	}
	return expired
}

// Clear removes all entries and returns how many were removed.
func (m *Map) Clear() (removed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.items {
		m.removeLocked(e, Cleared)
		removed++
	}
	return removed
}

// Walk iterates entries under a shared lock. The callback must be lightweight
// and must not mutate handles.
func (m *Map) Walk(ctx context.Context, fn func(e *model.Entry) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.items {
		select {
		case <-ctx.Done():
			return
		default:
			if !fn(e) {
				return
			}
		}
	}
}

func (m *Map) removeLocked(e *model.Entry, reason Reason) {
	delete(m.items, e.Key())
	m.len.Add(-1)
	m.mem.Add(-e.Weight())
	m.onRemove(e, reason)
}
