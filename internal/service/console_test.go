package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"brims/internal/domain"
	"brims/internal/policy"
	"brims/pkg/e"
)

func TestConsole_GetVisiblePage_DecoratesRows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, seedIncidents(t))
	tok, _ := f.lock.TryAcquire("42")
	defer f.lock.Release(tok)

	st := domain.DefaultQueryState()
	st.SetViewMode(domain.ViewAll)

	page := f.console.GetVisiblePage(barangay(), st)
	if page.TotalCount != 3 || len(page.Items) != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}

	rows := map[string]domain.PageItem{}
	for _, it := range page.Items {
		rows[it.ID] = it
	}

	if r := rows["7"]; !r.CanEdit || !r.CanDelete || r.Busy {
		t.Fatalf("row 7: %+v", r)
	}
	if r := rows["42"]; !r.Busy {
		t.Fatalf("row 42 must be busy: %+v", r)
	}
	if r := rows["99"]; r.CanEdit || r.Reason != string(policy.ReasonStatusLocked) {
		t.Fatalf("row 99: %+v", r)
	}
}

func TestConsole_EvaluatePolicy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := seedIncidents(t)
	seed[0].CreatedAt = mustTime(t).Add(-2 * time.Hour)
	f := newFixture(t, ctrl, seed)

	d, err := f.console.EvaluatePolicy(barangay(), "7")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.CanEdit || d.Reason != policy.ReasonTimeExpired {
		t.Fatalf("unexpected decision: %+v", d)
	}

	if _, err := f.console.EvaluatePolicy(admin(), "missing"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConsole_AcquireRelease(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, seedIncidents(t))

	if err := f.console.Acquire("7"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := f.console.Acquire("42"); !errors.Is(err, e.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if st := f.console.LockState(); !st.Busy || st.Subject != "7" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if released, err := f.console.Release("42"); err != nil || released {
		t.Fatalf("release for another subject must not free 7: %v %v", released, err)
	}
	if released, err := f.console.Release("7"); err != nil || !released {
		t.Fatalf("expected release to report true, got %v %v", released, err)
	}
	if released, _ := f.console.Release("7"); released {
		t.Fatalf("second release must be a no-op")
	}
	if _, err := f.console.Release(""); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := f.console.Acquire(""); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConsole_Refresh(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, seedIncidents(t))

	f.backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return(seedIncidents(t)[:2], nil)
	f.backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 2}, nil)

	if err := f.console.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.console.Stats().Total != 2 {
		t.Fatalf("unexpected stats: %+v", f.console.Stats())
	}
}

func TestConsole_RefreshRacingDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, seedIncidents(t))

	fetching := make(chan struct{})
	unblock := make(chan struct{})
	deleted := make(chan struct{})
	gomock.InOrder(
		f.backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Scope) ([]domain.Incident, error) {
			close(fetching)
			<-unblock
			return seedIncidents(t), nil
		}),
		f.backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 3}, nil),
		f.backend.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]domain.Incident{seedIncidents(t)[0], seedIncidents(t)[2]}, nil),
		f.backend.EXPECT().ListStats(gomock.Any(), gomock.Any()).Return(domain.IncidentStats{Total: 2}, nil),
	)
	f.backend.EXPECT().DeleteIncident(gomock.Any(), "42").DoAndReturn(func(context.Context, string) error {
		close(deleted)
		return nil
	})

	refreshErr := make(chan error, 1)
	go func() { refreshErr <- f.console.Refresh(context.Background()) }()
	<-fetching

	deleteErr := make(chan error, 1)
	go func() { deleteErr <- f.actions.Delete(context.Background(), admin(), "42") }()
	<-deleted
	close(unblock)

	if err := <-refreshErr; !errors.Is(err, e.ErrBusy) {
		t.Fatalf("refresh overlapping a delete must be dropped, got %v", err)
	}
	if err := <-deleteErr; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := f.store.Find("42"); ok {
		t.Fatalf("deleted incident must not come back")
	}
	if f.console.Stats().Total != 2 {
		t.Fatalf("unexpected stats: %+v", f.console.Stats())
	}
}
