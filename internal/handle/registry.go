// Package handle issues revocable local references to cached payloads.
// A handle is an opaque string: the configured base URL followed by a
// 32 hex chars xxh3-128 id. Resolving a revoked handle fails.
package handle

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

const IDLen = 32

type Registry struct {
	mu      sync.RWMutex
	baseURL string
	live    map[string][]byte // id -> payload
	seq     atomic.Uint64

	issued  atomic.Int64
	revoked atomic.Int64
}

func NewRegistry(baseURL string) *Registry {
	return &Registry{baseURL: baseURL, live: make(map[string][]byte)}
}

func (r *Registry) BaseURL() string { return r.baseURL }

// Issue makes a new handle for payload. Every call returns a distinct handle,
// even for the same key and payload.
func (r *Registry) Issue(key string, payload []byte) string {
	id := r.newID(key)

	r.mu.Lock()
	r.live[id] = payload
	r.mu.Unlock()

	r.issued.Add(1)
	return r.baseURL + id
}

// Resolve returns the payload behind a live handle. Both the full handle
// and the bare id are accepted.
func (r *Registry) Resolve(handle string) ([]byte, bool) {
	id, ok := r.ID(handle)
	if !ok {
		return nil, false
	}

	r.mu.RLock()
	payload, found := r.live[id]
	r.mu.RUnlock()
	return payload, found
}

// Revoke invalidates a handle. It reports false when the handle is unknown
// or was already revoked.
func (r *Registry) Revoke(handle string) bool {
	id, ok := r.ID(handle)
	if !ok {
		return false
	}

	r.mu.Lock()
	_, found := r.live[id]
	delete(r.live, id)
	r.mu.Unlock()

	if found {
		r.revoked.Add(1)
	}
	return found
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

// ID strips the base URL. A bare id is returned unchanged.
func (r *Registry) ID(handle string) (string, bool) {
	id := strings.TrimPrefix(handle, r.baseURL)
	if len(id) != IDLen {
		return "", false
	}
	return id, true
}

// Counters returns how many handles were issued and revoked since start.
func (r *Registry) Counters() (issued, revoked int64) {
	return r.issued.Load(), r.revoked.Load()
}

func (r *Registry) newID(key string) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], r.seq.Add(1))

	h := xxh3.New()
	_, _ = h.WriteString(key)
	_, _ = h.Write(buf[:])
	sum := h.Sum128().Bytes()
	return hex.EncodeToString(sum[:])
}
