package validator_test

import (
	"errors"
	"testing"

	"brims/internal/domain"
	"brims/pkg/e"
	"brims/pkg/validator"
)

func TestCheck_Valid(t *testing.T) {
	t.Parallel()

	p := domain.IncidentPayload{
		Title: "Flash flood", Location: "Purok 3", IncidentType: domain.TypeFlood,
		Severity: domain.SeverityHigh, IncidentDate: "2025-06-10",
	}
	if err := validator.Check(p); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestCheck_FieldPaths(t *testing.T) {
	t.Parallel()

	p := domain.IncidentPayload{
		Location: "Purok 3", IncidentType: domain.TypeFire,
		Severity: "Extreme", IncidentDate: "2025-06-10",
		Casualties: domain.CasualtiesPayload{Dead: -1},
	}
	err := validator.Check(p)

	ve, ok := e.IsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("ValidationError must unwrap to ErrInvalidInput")
	}

	want := map[string]string{
		"title":           "is required",
		"severity":        "must be Low, Medium, High or Critical",
		"casualties.dead": "must not be negative",
	}
	for field, msg := range want {
		if got := ve.Fields[field]; got != msg {
			t.Fatalf("field %q: expected %q got %q (all: %v)", field, msg, got, ve.Fields)
		}
	}
}

func TestCheck_NestedSlice(t *testing.T) {
	t.Parallel()

	err := validator.Check(domain.InfrastructureStatus{Items: []domain.InfrastructureItem{
		{Name: "Bridge", Status: "damaged"},
		{Name: "School", Status: "flooded"},
	}})

	ve, ok := e.IsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["items[1].status"]; !ok || len(ve.Fields) != 1 {
		t.Fatalf("unexpected fields %v", ve.Fields)
	}
}

func TestCheck_PatchSkipsUnsetFields(t *testing.T) {
	t.Parallel()

	status := domain.IncidentStatus("Closed")
	if err := validator.Check(domain.IncidentPatch{}); err != nil {
		t.Fatalf("empty patch must be valid, got %v", err)
	}
	if _, ok := e.IsValidation(validator.Check(domain.IncidentPatch{Status: &status})); !ok {
		t.Fatalf("unknown status must be rejected")
	}
}
