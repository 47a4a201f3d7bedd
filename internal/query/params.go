package query

import (
	"net/url"
	"strconv"
	"strings"

	"brims/internal/domain"
)

// ParseQueryState reads a query state from URL parameters:
// view, q, type, severity, status, sort, dir, page, size.
// Missing or malformed values fall back to the defaults.
func ParseQueryState(v url.Values) domain.QueryState {
	st := domain.DefaultQueryState()

	if mode := strings.ToLower(v.Get("view")); mode != "" {
		st.ViewMode = domain.ViewMode(mode)
	}
	st.Search = v.Get("q")
	if t := v.Get("type"); t != "" {
		st.TypeFilter = t
	}
	if s := v.Get("severity"); s != "" {
		st.SeverityFilter = s
	}
	if s := v.Get("status"); s != "" {
		st.StatusFilter = s
	}
	if f := v.Get("sort"); f != "" {
		st.SortField = domain.SortField(f)
	}
	if d := strings.ToLower(v.Get("dir")); d != "" {
		st.SortDirection = domain.SortDirection(d)
	}
	st.Page = parseInt(v.Get("page"), st.Page)
	st.PageSize = parseInt(v.Get("size"), st.PageSize)

	return Normalize(st)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
