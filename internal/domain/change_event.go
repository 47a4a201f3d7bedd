package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChangeKind string

const (
	ChangeReloaded ChangeKind = "reloaded"
	ChangeRemoved  ChangeKind = "removed"
	ChangeWarmed   ChangeKind = "warmed"
)

// ChangeEvent is published every time the collection store content changes.
type ChangeEvent struct {
	ID        uuid.UUID     `json:"id"`
	Kind      ChangeKind    `json:"kind"`
	SubjectID string        `json:"subject_id,omitempty"`
	Version   uint64        `json:"version"`
	Total     int           `json:"total"`
	Stats     IncidentStats `json:"stats"`
	At        time.Time     `json:"at"`
}
