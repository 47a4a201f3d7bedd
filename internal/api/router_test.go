package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brims/internal/actionlock"
	"brims/internal/api"
	"brims/internal/config"
	"brims/internal/domain"
	"brims/internal/metrics"
	"brims/internal/middleware"
	"brims/internal/policy"
	"brims/internal/service"
	mock_service "brims/internal/service/mocks"
	"brims/internal/store"
)

const testKey = "secret"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newServer(t *testing.T) (*httptest.Server, *mock_service.MockBackend, *service.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := newTestLogger()
	backend := mock_service.NewMockBackend(ctrl)

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)

	lock := actionlock.New(actionlock.WithObserver(collector))
	engine := policy.New(policy.WithEditWindow(time.Hour))
	st := store.New(domain.Scope{})

	coordinator := service.NewCoordinator(backend, st, nil, 0, collector, logger, service.WithActionGate(lock))
	actions := service.NewActions(lock, engine, st, backend, coordinator, collector, logger)
	console := service.NewConsole(st, engine, lock, coordinator)
	svc := service.NewService(coordinator, actions, console)

	cfg := &config.Config{APIKey: testKey, Http: config.HttpConfig{Port: ":0"}}
	srv := api.NewServer(cfg, logger, svc, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, backend, svc
}

func do(t *testing.T, ts *httptest.Server, method, path, role string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set(middleware.HeaderAPIKey, testKey)
	if role != "" {
		req.Header.Set(middleware.HeaderActorRole, role)
		req.Header.Set(middleware.HeaderActorID, "u-1")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func seed() []domain.Incident {
	return []domain.Incident{
		{ID: "7", Title: "Flood", Severity: domain.SeverityHigh, Status: domain.StatusReported, CreatedAt: time.Now().Add(-time.Minute)},
		{ID: "42", Title: "Fire", Severity: domain.SeverityLow, Status: domain.StatusResolved, CreatedAt: time.Now().Add(-2 * time.Minute)},
	}
}

func TestRouter_ListAfterReload(t *testing.T) {
	t.Parallel()

	ts, backend, svc := newServer(t)

	backend.EXPECT().ListIncidents(gomock.Any(), domain.Scope{}).Return(seed(), nil)
	backend.EXPECT().ListStats(gomock.Any(), domain.Scope{}).Return(domain.IncidentStats{Total: 2, Reported: 1, Resolved: 1, HighCritical: 1}, nil)

	if err := svc.Coordinator.Reload(context.Background(), service.TriggerStartup); err != nil {
		t.Fatalf("reload: %v", err)
	}

	resp := do(t, ts, http.MethodGet, "/api/v1/console/incidents?sort=severity&dir=desc", "barangay", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var page domain.ListIncidentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.TotalCount != 2 || page.Items[0].ID != "7" {
		t.Fatalf("unexpected page %+v", page)
	}
	if !page.Items[0].CanEdit || page.Items[1].CanEdit {
		t.Fatalf("resolved incident must be locked for barangay, got %+v", page.Items)
	}

	ready := do(t, ts, http.MethodGet, "/api/v1/ready", "", nil)
	if ready.StatusCode != http.StatusOK {
		t.Fatalf("expected ready after reload, got %d", ready.StatusCode)
	}
}

func TestRouter_Guards(t *testing.T) {
	t.Parallel()

	ts, _, _ := newServer(t)

	resp := do(t, ts, http.MethodGet, "/api/v1/console/stats", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing role: expected 401 got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/console/stats", nil)
	req.Header.Set(middleware.HeaderActorRole, "admin")
	noKey, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer noKey.Body.Close()
	if noKey.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing key: expected 401 got %d", noKey.StatusCode)
	}

	health := do(t, ts, http.MethodGet, "/api/v1/health", "", nil)
	if health.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200 got %d", health.StatusCode)
	}

	ready := do(t, ts, http.MethodGet, "/api/v1/ready", "", nil)
	if ready.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("ready before first load: expected 503 got %d", ready.StatusCode)
	}
}

func TestRouter_DeleteWhileLocked(t *testing.T) {
	t.Parallel()

	ts, backend, svc := newServer(t)

	backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(seed(), nil)
	backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 2}, nil)
	if err := svc.Coordinator.Reload(context.Background(), service.TriggerStartup); err != nil {
		t.Fatalf("reload: %v", err)
	}

	acquire := do(t, ts, http.MethodPost, "/api/v1/console/lock", "admin", []byte(`{"subject_id":"7"}`))
	if acquire.StatusCode != http.StatusOK {
		t.Fatalf("acquire: expected 200 got %d", acquire.StatusCode)
	}

	busy := do(t, ts, http.MethodDelete, "/api/v1/console/incidents/42", "admin", nil)
	if busy.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 while locked, got %d", busy.StatusCode)
	}

	release := do(t, ts, http.MethodDelete, "/api/v1/console/lock?subject_id=7", "admin", nil)
	if release.StatusCode != http.StatusOK {
		t.Fatalf("release: expected 200 got %d", release.StatusCode)
	}

	gomock.InOrder(
		backend.EXPECT().DeleteIncident(gomock.Any(), "42").Return(nil),
		backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(seed()[:1], nil),
		backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 1}, nil),
	)

	deleted := do(t, ts, http.MethodDelete, "/api/v1/console/incidents/42", "admin", nil)
	if deleted.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", deleted.StatusCode)
	}
	if got := svc.Console.Stats().Total; got != 1 {
		t.Fatalf("expected total 1 after delete, got %d", got)
	}

	m := do(t, ts, http.MethodGet, "/metrics", "", nil)
	if m.StatusCode != http.StatusOK {
		t.Fatalf("metrics: expected 200 got %d", m.StatusCode)
	}
}

func TestRouter_ReleaseDoesNotFreeRunningAction(t *testing.T) {
	t.Parallel()

	ts, backend, svc := newServer(t)

	backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(seed(), nil)
	backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 2}, nil)
	if err := svc.Coordinator.Reload(context.Background(), service.TriggerStartup); err != nil {
		t.Fatalf("reload: %v", err)
	}

	started := make(chan struct{})
	unblock := make(chan struct{})
	gomock.InOrder(
		backend.EXPECT().DeleteIncident(gomock.Any(), "42").DoAndReturn(func(context.Context, string) error {
			close(started)
			<-unblock
			return nil
		}),
		backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(seed()[:1], nil),
		backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 1}, nil),
	)

	done := make(chan int, 1)
	go func() {
		req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/console/incidents/42", nil)
		req.Header.Set(middleware.HeaderAPIKey, testKey)
		req.Header.Set(middleware.HeaderActorRole, "admin")
		req.Header.Set(middleware.HeaderActorID, "u-1")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			done <- 0
			return
		}
		_ = resp.Body.Close()
		done <- resp.StatusCode
	}()
	<-started

	release := do(t, ts, http.MethodDelete, "/api/v1/console/lock?subject_id=42", "admin", nil)
	var body map[string]bool
	if err := json.NewDecoder(release.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["released"] {
		t.Fatalf("running delete must keep the lock")
	}

	acquire := do(t, ts, http.MethodPost, "/api/v1/console/lock", "admin", []byte(`{"subject_id":"7"}`))
	if acquire.StatusCode != http.StatusConflict {
		t.Fatalf("acquire during delete: expected 409 got %d", acquire.StatusCode)
	}

	close(unblock)
	if code := <-done; code != http.StatusNoContent {
		t.Fatalf("delete: expected 204 got %d", code)
	}
	if svc.Console.LockState().Busy {
		t.Fatalf("lock must be free once the delete finished")
	}
}
