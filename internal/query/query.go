package query

import (
	"cmp"
	"slices"
	"strings"

	"brims/internal/domain"
)

type Page struct {
	Items      []domain.Incident `json:"items"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// Normalize fills defaults and enforces the cross-field rules of a query
// state without touching the caller's copy.
func Normalize(st domain.QueryState) domain.QueryState {
	switch st.ViewMode {
	case domain.ViewActive, domain.ViewArchived, domain.ViewAll:
	default:
		st.ViewMode = domain.ViewActive
	}
	if st.ViewMode == domain.ViewArchived {
		st.StatusFilter = domain.FilterAll
	}
	if st.TypeFilter == "" {
		st.TypeFilter = domain.FilterAll
	}
	if st.SeverityFilter == "" {
		st.SeverityFilter = domain.FilterAll
	}
	if st.StatusFilter == "" {
		st.StatusFilter = domain.FilterAll
	}
	if !st.SortField.Valid() {
		st.SortField = domain.SortCreatedAt
	}
	if st.SortDirection != domain.SortAsc && st.SortDirection != domain.SortDesc {
		st.SortDirection = domain.SortAsc
	}
	if st.PageSize <= 0 {
		st.PageSize = domain.DefaultPageSize
	}
	if st.PageSize > domain.MaxPageSize {
		st.PageSize = domain.MaxPageSize
	}
	if st.Page < 1 {
		st.Page = 1
	}
	return st
}

// Run computes the visible page. The input slice is never modified and the
// result depends only on the arguments.
func Run(incidents []domain.Incident, st domain.QueryState) Page {
	st = Normalize(st)

	filtered := make([]domain.Incident, 0, len(incidents))
	term := strings.ToLower(strings.TrimSpace(st.Search))
	for _, inc := range incidents {
		if !matchView(inc, st.ViewMode) {
			continue
		}
		if term != "" && !matchSearch(inc, term) {
			continue
		}
		if st.TypeFilter != domain.FilterAll && inc.IncidentType != st.TypeFilter {
			continue
		}
		if st.SeverityFilter != domain.FilterAll && string(inc.Severity) != st.SeverityFilter {
			continue
		}
		if st.StatusFilter != domain.FilterAll && string(inc.Status) != st.StatusFilter {
			continue
		}
		filtered = append(filtered, inc)
	}

	sortIncidents(filtered, st.SortField, st.SortDirection)

	return paginate(filtered, st.Page, st.PageSize)
}

func matchView(inc domain.Incident, mode domain.ViewMode) bool {
	switch mode {
	case domain.ViewActive:
		return inc.Status != domain.StatusArchived
	case domain.ViewArchived:
		return inc.Status == domain.StatusArchived
	default:
		return true
	}
}

func matchSearch(inc domain.Incident, term string) bool {
	for _, field := range []string{inc.Title, inc.Location, inc.Description, inc.IncidentType} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func sortIncidents(items []domain.Incident, field domain.SortField, dir domain.SortDirection) {
	compare := comparator(field)
	slices.SortStableFunc(items, func(a, b domain.Incident) int {
		if dir == domain.SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func comparator(field domain.SortField) func(a, b domain.Incident) int {
	switch field {
	case domain.SortTitle:
		return func(a, b domain.Incident) int { return cmp.Compare(a.Title, b.Title) }
	case domain.SortIncidentType:
		return func(a, b domain.Incident) int { return cmp.Compare(a.IncidentType, b.IncidentType) }
	case domain.SortSeverity:
		return func(a, b domain.Incident) int { return cmp.Compare(a.Severity.Rank(), b.Severity.Rank()) }
	case domain.SortStatus:
		return func(a, b domain.Incident) int { return cmp.Compare(a.Status, b.Status) }
	case domain.SortLocation:
		return func(a, b domain.Incident) int { return cmp.Compare(a.Location, b.Location) }
	case domain.SortIncidentDate:
		return func(a, b domain.Incident) int {
			ta, _ := a.IncidentTime()
			tb, _ := b.IncidentTime()
			return ta.Compare(tb)
		}
	case domain.SortAffectedFamilies:
		return func(a, b domain.Incident) int { return cmp.Compare(a.AffectedFamilies, b.AffectedFamilies) }
	case domain.SortAffectedIndividuals:
		return func(a, b domain.Incident) int { return cmp.Compare(a.AffectedIndividuals, b.AffectedIndividuals) }
	default:
		return func(a, b domain.Incident) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}

func paginate(items []domain.Incident, page, size int) Page {
	total := len(items)
	totalPages := (total + size - 1) / size
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]domain.Incident, end-start)
	copy(out, items[start:end])

	return Page{
		Items:      out,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   size,
	}
}
