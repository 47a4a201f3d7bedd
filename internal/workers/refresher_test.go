package workers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"brims/pkg/e"
)

type fakeReloader struct {
	calls   atomic.Int32
	trigger atomic.Value
	err     error
}

func (f *fakeReloader) Reload(_ context.Context, trigger string) error {
	f.calls.Add(1)
	f.trigger.Store(trigger)
	return f.err
}

type fakeBusy bool

func (b fakeBusy) Busy() bool { return bool(b) }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRefresher_TickReloads(t *testing.T) {
	t.Parallel()

	rl := &fakeReloader{}
	r := NewRefresher(rl, fakeBusy(false), "schedule", discard())
	r.tick()

	if rl.calls.Load() != 1 {
		t.Fatalf("expected one reload, got %d", rl.calls.Load())
	}
	if got := rl.trigger.Load(); got != "schedule" {
		t.Fatalf("unexpected trigger %v", got)
	}
}

func TestRefresher_SkipsWhileBusy(t *testing.T) {
	t.Parallel()

	rl := &fakeReloader{}
	r := NewRefresher(rl, fakeBusy(true), "schedule", discard())
	r.tick()

	if rl.calls.Load() != 0 {
		t.Fatalf("reload must be skipped while busy")
	}
}

func TestRefresher_ErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	rl := &fakeReloader{err: errors.New("backend down")}
	r := NewRefresher(rl, nil, "schedule", discard())
	r.tick()

	if rl.calls.Load() != 1 {
		t.Fatalf("expected one reload attempt")
	}
}

func TestRefresher_DroppedReloadIsNotAFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rl := &fakeReloader{err: fmt.Errorf("service.Coordinator.Reload: schedule: %w", e.ErrBusy)}
	r := NewRefresher(rl, fakeBusy(false), "schedule", logger)
	r.tick()

	out := buf.String()
	if strings.Contains(out, "scheduled refresh failed") {
		t.Fatalf("busy reload must not be logged as a failure: %s", out)
	}
	if !strings.Contains(out, "refresh skipped") {
		t.Fatalf("expected skip log, got %s", out)
	}
}

func TestRefresher_Schedule(t *testing.T) {
	t.Parallel()

	rl := &fakeReloader{}
	r := NewRefresher(rl, fakeBusy(false), "schedule", discard())

	if err := r.Start("not a schedule"); err == nil {
		t.Fatalf("expected error for bad schedule")
	}

	if err := r.Start("@every 1s"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer r.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for rl.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	if rl.calls.Load() == 0 {
		t.Fatalf("scheduled reload never ran")
	}
}
