package server

//go:generate easyjson -all types.go

import (
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache"
)

//easyjson:json
type preloadRequest struct {
	URLs []string `json:"urls"`
}

//easyjson:json
type preloadResponse struct {
	Handle string `json:"handle"`
	Cached bool   `json:"cached"`
}

//easyjson:json
type preloadAllResponse struct {
	Handles []string `json:"handles"`
}

//easyjson:json
type expireResponse struct {
	Expired int `json:"expired"`
}

//easyjson:json
type errorResponse struct {
	Error string `json:"error"`
}

//easyjson:json
type statsResponse struct {
	Size             int    `json:"size"`
	MaxEntries       int    `json:"max_entries"`
	TotalAccessCount int64  `json:"total_access_count"`
	Bytes            int64  `json:"bytes"`
	LiveHandles      int    `json:"live_handles"`
	RetiredHandles   int64  `json:"retired_handles"`
	Oldest           string `json:"oldest,omitempty"`
	Newest           string `json:"newest,omitempty"`
	Hits             int64  `json:"hits"`
	Misses           int64  `json:"misses"`
	Fetches          int64  `json:"fetches"`
	FetchFailures    int64  `json:"fetch_failures"`
	Coalesced        int64  `json:"coalesced"`
	Evicted          int64  `json:"evicted"`
	Expired          int64  `json:"expired"`
	Replaced         int64  `json:"replaced"`
}

func newStatsResponse(s cache.Stats) statsResponse {
	return statsResponse{
		Size:             s.Size,
		MaxEntries:       s.MaxEntries,
		TotalAccessCount: s.TotalAccessCount,
		Bytes:            s.Bytes,
		LiveHandles:      s.LiveHandles,
		RetiredHandles:   s.RetiredHandles,
		Oldest:           fmtTime(s.Oldest),
		Newest:           fmtTime(s.Newest),
		Hits:             s.Hits,
		Misses:           s.Misses,
		Fetches:          s.Fetches,
		FetchFailures:    s.FetchFailures,
		Coalesced:        s.Coalesced,
		Evicted:          s.Evicted,
		Expired:          s.Expired,
		Replaced:         s.Replaced,
	}
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
