package domain

type IncidentStats struct {
	Total         int `json:"total"`
	Reported      int `json:"reported"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
	HighCritical  int `json:"high_critical"`
}
