package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brims/internal/domain"
	"brims/pkg/e"
)

func TestActor(t *testing.T) {
	t.Parallel()

	var got domain.Actor
	h := Actor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ActorFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderActorRole, " Barangay ")
	req.Header.Set(HeaderActorID, "u-9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if got.Role != domain.RoleBarangay || got.ID != "u-9" {
		t.Fatalf("unexpected actor %+v", got)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without role, got %d", rr.Code)
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	cases := []struct {
		name string
		key  string
		sent string
		want int
	}{
		{"disabled", "", "", http.StatusOK},
		{"match", "k1", "k1", http.StatusOK},
		{"mismatch", "k1", "k2", http.StatusUnauthorized},
		{"missing", "k1", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.sent != "" {
				req.Header.Set(HeaderAPIKey, tc.sent)
			}
			rr := httptest.NewRecorder()
			APIKeyMiddleware(tc.key)(ok).ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, rr.Code)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type body struct {
		Status string `json:"status"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"status":"Resolved"}`))
	got, err := DecodeJSON[body](httptest.NewRecorder(), req)
	if err != nil || got.Status != "Resolved" {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}

	for _, raw := range []string{"", "{bad", `{"unknown":1}`} {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		if _, err := DecodeJSON[body](httptest.NewRecorder(), req); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("body %q: expected ErrInvalidInput, got %v", raw, err)
		}
	}
}
