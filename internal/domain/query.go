package domain

type ViewMode string

const (
	ViewActive   ViewMode = "active"
	ViewArchived ViewMode = "archived"
	ViewAll      ViewMode = "all"
)

// FilterAll disables the type, severity and status filters.
const FilterAll = "all"

type SortField string

const (
	SortTitle               SortField = "title"
	SortIncidentType        SortField = "incident_type"
	SortSeverity            SortField = "severity"
	SortStatus              SortField = "status"
	SortLocation            SortField = "location"
	SortIncidentDate        SortField = "incident_date"
	SortCreatedAt           SortField = "created_at"
	SortAffectedFamilies    SortField = "affected_families"
	SortAffectedIndividuals SortField = "affected_individuals"
)

func (f SortField) Valid() bool {
	switch f {
	case SortTitle, SortIncidentType, SortSeverity, SortStatus, SortLocation,
		SortIncidentDate, SortCreatedAt, SortAffectedFamilies, SortAffectedIndividuals:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type QueryState struct {
	ViewMode       ViewMode      `json:"view_mode"`
	Search         string        `json:"search"`
	TypeFilter     string        `json:"type_filter"`
	SeverityFilter string        `json:"severity_filter"`
	StatusFilter   string        `json:"status_filter"`
	SortField      SortField     `json:"sort_field"`
	SortDirection  SortDirection `json:"sort_direction"`
	PageSize       int           `json:"page_size"`
	Page           int           `json:"page"`
}

func DefaultQueryState() QueryState {
	return QueryState{
		ViewMode:       ViewActive,
		TypeFilter:     FilterAll,
		SeverityFilter: FilterAll,
		StatusFilter:   FilterAll,
		SortField:      SortCreatedAt,
		SortDirection:  SortDesc,
		PageSize:       DefaultPageSize,
		Page:           1,
	}
}

// SetViewMode switches the coarse partition. Individual statuses are
// meaningless inside the archived view, so the status filter is reset there.
func (q *QueryState) SetViewMode(m ViewMode) {
	q.ViewMode = m
	if m == ViewArchived {
		q.StatusFilter = FilterAll
	}
	q.Page = 1
}

func (q *QueryState) SetSearch(term string) {
	q.Search = term
	q.Page = 1
}

func (q *QueryState) SetTypeFilter(v string) {
	q.TypeFilter = v
	q.Page = 1
}

func (q *QueryState) SetSeverityFilter(v string) {
	q.SeverityFilter = v
	q.Page = 1
}

func (q *QueryState) SetStatusFilter(v string) {
	q.StatusFilter = v
	q.Page = 1
}

// ToggleSort flips the direction when f is already the sort field, otherwise
// sorts by f ascending.
func (q *QueryState) ToggleSort(f SortField) {
	if q.SortField == f {
		if q.SortDirection == SortAsc {
			q.SortDirection = SortDesc
		} else {
			q.SortDirection = SortAsc
		}
		return
	}
	q.SortField = f
	q.SortDirection = SortAsc
}

func (q *QueryState) SetPageSize(n int) {
	q.PageSize = n
	q.Page = 1
}

func (q *QueryState) SetPage(n int) {
	q.Page = n
}
