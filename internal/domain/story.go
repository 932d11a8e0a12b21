package domain

import "time"

// Story is an ephemeral media post. Expired stories are filtered at read
// time, never actively evicted.
type Story struct {
	ID        string
	UserID    string
	MediaURL  string
	MediaType string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Active reports whether the story is still visible at the given instant.
func (s *Story) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
