// ABOUTME: Entry wraps a cached payload with TTL and access metadata
// ABOUTME: The metadata drives staleness checks and eviction ranking

package articlecache

import (
	"encoding/json"
	"time"
)

// Entry is the persisted wrapper around one cached payload
type Entry struct {
	// Payload is the cached value, opaque to the manager
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is when the entry was created or last refreshed, unix millis
	CreatedAt int64 `json:"createdAt"`

	// TTLMillis is the freshness window; always >= 0
	TTLMillis int64 `json:"ttlMillis"`

	// AccessCount counts cache hits on this entry
	AccessCount int64 `json:"accessCount"`

	// LastAccessedAt is the time of the last hit, unix millis
	LastAccessedAt int64 `json:"lastAccessedAt"`
}

// Expired reports whether the entry's freshness window has passed
func (e *Entry) Expired(now time.Time) bool {
	return now.UnixMilli()-e.CreatedAt > e.TTLMillis
}

// CreatedTime returns CreatedAt as a time.Time
func (e *Entry) CreatedTime() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// rankBefore reports whether e evicts before other under the
// (accessCount, lastAccessedAt) lexicographic rank: least-used first,
// then oldest-accessed
func (e *Entry) rankBefore(other *Entry) bool {
	if e.AccessCount != other.AccessCount {
		return e.AccessCount < other.AccessCount
	}
	return e.LastAccessedAt < other.LastAccessedAt
}
