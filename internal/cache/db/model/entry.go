package model

import (
	"sync/atomic"
	"time"
)

// Entry is a single cached image.
// Payload and key are immutable after construction; counters are atomics so that
// hits do not need the store write lock. The handles slice is owned by the store
// and must be mutated only under its lock.
type Entry struct {
	key         string       // resource URL
	payload     []byte       // fetched bytes, owned exclusively by the entry
	createdAt   int64        // unix nano, used for age-based expiry and scoring
	seq         uint64       // insertion order, stable eviction tie-break
	accessCount atomic.Int64 // hits, incl. the one that created the entry
	handles     []string     // handles issued for this entry (revoked on removal)
}

// NewEntry makes an entry with accessCount = 1, as an insert is the first access.
func NewEntry(key string, payload []byte, createdAt time.Time) *Entry {
	e := &Entry{
		key:       key,
		payload:   payload,
		createdAt: createdAt.UnixNano(),
	}
	e.accessCount.Store(1)
	return e
}

func (e *Entry) Key() string { return e.key }

func (e *Entry) Seq() uint64 { return e.seq }

// SetSeq is called by the store on insertion.
func (e *Entry) SetSeq(seq uint64) { e.seq = seq }
