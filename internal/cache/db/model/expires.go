package model

import "time"

// IsExpired reports whether the entry reached maxAge. Expired entries are never served.
func (e *Entry) IsExpired(now time.Time, maxAge time.Duration) bool {
	if e == nil {
		return false
	}
	return e.Age(now) >= maxAge
}

// Score is the retention priority: frequently and recently accessed entries score higher.
//
//	score = accessCount - ageInHours
//
// Lower scores are evicted first.
func (e *Entry) Score(now time.Time) float64 {
	return float64(e.AccessCount()) - e.Age(now).Hours()
}
