package domain

import (
	"strings"
	"time"
)

type IncidentStatus string

const (
	StatusReported      IncidentStatus = "Reported"
	StatusInvestigating IncidentStatus = "Investigating"
	StatusResolved      IncidentStatus = "Resolved"
	StatusArchived      IncidentStatus = "Archived"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusReported, StatusInvestigating, StatusResolved, StatusArchived:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Rank orders severities from Low (1) to Critical (4). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// Incident types are open-ended; these are the ones the console knows about.
const (
	TypeFlood      = "Flood"
	TypeLandslide  = "Landslide"
	TypeFire       = "Fire"
	TypeEarthquake = "Earthquake"
	TypeVehicular  = "Vehicular"
)

type Casualties struct {
	Dead    int `json:"dead"`
	Injured int `json:"injured"`
	Missing int `json:"missing"`
}

type Incident struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Location            string         `json:"location"`
	Barangay            string         `json:"barangay,omitempty"`
	IncidentType        string         `json:"incident_type"`
	Severity            Severity       `json:"severity"`
	Status              IncidentStatus `json:"status"`
	IncidentDate        string         `json:"incident_date"`
	CreatedAt           time.Time      `json:"created_at"`
	AffectedFamilies    int            `json:"affected_families"`
	AffectedIndividuals int            `json:"affected_individuals"`
	Casualties          Casualties     `json:"casualties"`
	ServerEditable      *bool          `json:"server_editable,omitempty"`
	ServerDeletable     *bool          `json:"server_deletable,omitempty"`
}

// Clone returns a copy that shares no pointers with the receiver.
func (i Incident) Clone() Incident {
	out := i
	if i.ServerEditable != nil {
		v := *i.ServerEditable
		out.ServerEditable = &v
	}
	if i.ServerDeletable != nil {
		v := *i.ServerDeletable
		out.ServerDeletable = &v
	}
	return out
}

var incidentDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
	"Jan 2, 2006",
}

// IncidentTime parses the user-entered incident date. The second return value
// is false when none of the known layouts match.
func (i Incident) IncidentTime() (time.Time, bool) {
	raw := strings.TrimSpace(i.IncidentDate)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range incidentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type Scope struct {
	Barangay string `json:"barangay,omitempty"`
}

func (s Scope) All() bool { return s.Barangay == "" }

func (s Scope) String() string {
	if s.All() {
		return "all"
	}
	return s.Barangay
}
