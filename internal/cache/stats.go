package cache

import (
	"context"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache/db/model"
)

// Stats is a point-in-time view of the cache.
type Stats struct {
	Size             int
	MaxEntries       int
	TotalAccessCount int64
	Bytes            int64
	LiveHandles      int
	// RetiredHandles counts handles revoked because their image held too many.
	RetiredHandles int64
	// Oldest and Newest are zero when the cache is empty.
	Oldest time.Time
	Newest time.Time

	Hits          int64
	Misses        int64
	Fetches       int64
	FetchFailures int64
	Coalesced     int64
	Evicted       int64
	Expired       int64
	Replaced      int64
}

func (c *Cache) Stats() Stats {
	s := Stats{MaxEntries: c.cfg.DB.MaxEntries}

	c.db.Walk(context.Background(), func(e *model.Entry) bool {
		s.Size++
		s.Bytes += e.Weight()
		s.TotalAccessCount += e.AccessCount()
		created := e.CreatedAt()
		if s.Oldest.IsZero() || created.Before(s.Oldest) {
			s.Oldest = created
		}
		if created.After(s.Newest) {
			s.Newest = created
		}
		return true
	})
	s.LiveHandles = c.handles.Len()

	s.Hits, s.Misses, s.Fetches, s.FetchFailures, s.Evicted, s.Expired = c.counters.snapshot()
	s.Coalesced = c.counters.coalesced.Load()
	s.Replaced = c.counters.replaced.Load()
	s.RetiredHandles = c.counters.retired.Load()
	return s
}
