package domain

import "time"

// CachedSnapshot is the collection as persisted in the snapshot cache.
type CachedSnapshot struct {
	Incidents []Incident    `json:"incidents"`
	Stats     IncidentStats `json:"stats"`
	SavedAt   time.Time     `json:"saved_at"`
}
