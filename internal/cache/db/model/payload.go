package model

import "slices"

func (e *Entry) Payload() []byte { return e.payload }

// Weight is the payload size in bytes; it is what the soft memory limit is measured in.
func (e *Entry) Weight() int64 { return int64(len(e.payload)) }

// AddHandle remembers an issued handle. When more than limit handles are held the
// oldest ones are forgotten and returned, so the caller can revoke them.
// A limit <= 0 keeps every handle. Store lock must be held.
func (e *Entry) AddHandle(h string, limit int) (dropped []string) {
	e.handles = append(e.handles, h)
	if limit > 0 && len(e.handles) > limit {
		n := len(e.handles) - limit
		dropped = slices.Clone(e.handles[:n])
		e.handles = slices.Delete(e.handles, 0, n)
	}
	return dropped
}

// Handles returns issued handles. Store lock must be held.
func (e *Entry) Handles() []string { return e.handles }

// TakeHandles returns issued handles and forgets them. Store lock must be held.
func (e *Entry) TakeHandles() []string {
	h := e.handles
	e.handles = nil
	return h
}
