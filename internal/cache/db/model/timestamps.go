package model

import "time"

func (e *Entry) CreatedAt() time.Time { return time.Unix(0, e.createdAt) }

func (e *Entry) CreatedAtUnixNano() int64 { return e.createdAt }

func (e *Entry) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixNano() - e.createdAt)
}

// Touch registers a hit and returns the new access count.
func (e *Entry) Touch() int64 { return e.accessCount.Add(1) }

func (e *Entry) AccessCount() int64 { return e.accessCount.Load() }

// SetAccessCount is used when an entry is restored from a dump.
func (e *Entry) SetAccessCount(n int64) { e.accessCount.Store(n) }
