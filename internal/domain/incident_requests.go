package domain

type CasualtiesPayload struct {
	Dead    int `json:"dead" validate:"min=0"`
	Injured int `json:"injured" validate:"min=0"`
	Missing int `json:"missing" validate:"min=0"`
}

type IncidentPayload struct {
	Title               string            `json:"title" validate:"required,max=255"`
	Description         string            `json:"description" validate:"max=5000"`
	Location            string            `json:"location" validate:"required,max=255"`
	Barangay            string            `json:"barangay,omitempty" validate:"max=128"`
	IncidentType        string            `json:"incident_type" validate:"required,max=64"`
	Severity            Severity          `json:"severity" validate:"required,severity"`
	IncidentDate        string            `json:"incident_date" validate:"required"`
	AffectedFamilies    int               `json:"affected_families" validate:"min=0"`
	AffectedIndividuals int               `json:"affected_individuals" validate:"min=0"`
	Casualties          CasualtiesPayload `json:"casualties"`
}

type IncidentPatch struct {
	Title               *string            `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description         *string            `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location            *string            `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	IncidentType        *string            `json:"incident_type,omitempty" validate:"omitempty,min=1,max=64"`
	Severity            *Severity          `json:"severity,omitempty" validate:"omitempty,severity"`
	Status              *IncidentStatus    `json:"status,omitempty" validate:"omitempty,status"`
	IncidentDate        *string            `json:"incident_date,omitempty"`
	AffectedFamilies    *int               `json:"affected_families,omitempty" validate:"omitempty,min=0"`
	AffectedIndividuals *int               `json:"affected_individuals,omitempty" validate:"omitempty,min=0"`
	Casualties          *CasualtiesPayload `json:"casualties,omitempty"`
}

// Apply copies the set fields onto inc.
func (p IncidentPatch) Apply(inc *Incident) {
	if p.Title != nil {
		inc.Title = *p.Title
	}
	if p.Description != nil {
		inc.Description = *p.Description
	}
	if p.Location != nil {
		inc.Location = *p.Location
	}
	if p.IncidentType != nil {
		inc.IncidentType = *p.IncidentType
	}
	if p.Severity != nil {
		inc.Severity = *p.Severity
	}
	if p.Status != nil {
		inc.Status = *p.Status
	}
	if p.IncidentDate != nil {
		inc.IncidentDate = *p.IncidentDate
	}
	if p.AffectedFamilies != nil {
		inc.AffectedFamilies = *p.AffectedFamilies
	}
	if p.AffectedIndividuals != nil {
		inc.AffectedIndividuals = *p.AffectedIndividuals
	}
	if p.Casualties != nil {
		inc.Casualties = Casualties(*p.Casualties)
	}
}

type StatusChangeRequest struct {
	Status IncidentStatus `json:"status" validate:"required,status"`
}

type SubRecordKind string

const (
	SubRecordPopulation     SubRecordKind = "population"
	SubRecordInfrastructure SubRecordKind = "infrastructure"
)

type PopulationData struct {
	EvacuatedFamilies    int    `json:"evacuated_families" validate:"min=0"`
	EvacuatedIndividuals int    `json:"evacuated_individuals" validate:"min=0"`
	Male                 int    `json:"male" validate:"min=0"`
	Female               int    `json:"female" validate:"min=0"`
	Children             int    `json:"children" validate:"min=0"`
	Seniors              int    `json:"seniors" validate:"min=0"`
	PWD                  int    `json:"pwd" validate:"min=0"`
	EvacuationCenter     string `json:"evacuation_center,omitempty" validate:"max=255"`
}

type InfrastructureItem struct {
	Name    string `json:"name" validate:"required,max=128"`
	Status  string `json:"status" validate:"required,oneof=operational damaged destroyed unknown"`
	Remarks string `json:"remarks,omitempty" validate:"max=1000"`
}

type InfrastructureStatus struct {
	Items []InfrastructureItem `json:"items" validate:"dive"`
}

type ListIncidentsResponse struct {
	Items      []PageItem `json:"items"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}

// PageItem is an incident as shown to one actor: the policy decision and the
// row busy flag are computed per request.
type PageItem struct {
	Incident
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
	Reason    string `json:"reason,omitempty"`
	Busy      bool   `json:"busy"`
}
