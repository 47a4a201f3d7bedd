//go:build integration

package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"brims/internal/domain"
	"brims/pkg/e"
)

var testClient *goredis.Client

func TestMain(m *testing.M) {
	ctx := context.Background()

	tc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	port, _ := tc.MappedPort(ctx, "6379/tcp")
	testClient = goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})

	code := m.Run()

	_ = testClient.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func flush(t *testing.T) {
	t.Helper()
	if err := testClient.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flushdb: %v", err)
	}
}

func TestSnapshotCache_SaveLoad(t *testing.T) {
	flush(t)
	ctx := context.Background()
	cache := NewSnapshotCache(&Redis{Client: testClient})

	got, err := cache.Load(ctx, domain.Scope{})
	if err != nil || got != nil {
		t.Fatalf("expected miss, got %+v err=%v", got, err)
	}

	snap := domain.CachedSnapshot{
		Incidents: []domain.Incident{{ID: "1", Title: "Flood", Status: domain.StatusReported}},
		Stats:     domain.IncidentStats{Total: 1, Reported: 1},
		SavedAt:   time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}
	scope := domain.Scope{Barangay: "San Isidro"}
	if err := cache.Save(ctx, scope, snap, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err = cache.Load(ctx, scope)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || len(got.Incidents) != 1 || got.Stats != snap.Stats || !got.SavedAt.Equal(snap.SavedAt) {
		t.Fatalf("unexpected snapshot: %+v", got)
	}

	// scopes do not share entries
	if other, _ := cache.Load(ctx, domain.Scope{}); other != nil {
		t.Fatalf("global scope must miss, got %+v", other)
	}
}

func TestChangeQueue_FIFO(t *testing.T) {
	flush(t)
	ctx := context.Background()
	q := NewChangeQueue(testClient, "brims:test:changes")

	first := domain.ChangeEvent{ID: uuid.New(), Kind: domain.ChangeReloaded, Version: 1}
	second := domain.ChangeEvent{ID: uuid.New(), Kind: domain.ChangeRemoved, Version: 2, SubjectID: "42"}
	for _, ev := range []domain.ChangeEvent{first, second} {
		if err := q.Enqueue(ctx, ev); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	got, err := q.Dequeue(ctx, time.Second)
	if err != nil || got.ID != first.ID {
		t.Fatalf("expected first event, got %+v err=%v", got, err)
	}
	got, err = q.Dequeue(ctx, time.Second)
	if err != nil || got.ID != second.ID || got.SubjectID != "42" {
		t.Fatalf("expected second event, got %+v err=%v", got, err)
	}

	if _, err := q.Dequeue(ctx, time.Second); !errors.Is(err, e.ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}
}

func TestChangeQueue_Trim(t *testing.T) {
	flush(t)
	ctx := context.Background()
	q := NewChangeQueue(testClient, "brims:test:trim")
	q.maxLen = 3

	for i := 1; i <= 5; i++ {
		if err := q.Enqueue(ctx, domain.ChangeEvent{ID: uuid.New(), Version: uint64(i)}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	n, err := q.Len(ctx)
	if err != nil || n != 3 {
		t.Fatalf("expected 3 queued events, got %d err=%v", n, err)
	}
	got, _ := q.Dequeue(ctx, time.Second)
	if got.Version != 3 {
		t.Fatalf("oldest kept event must be version 3, got %d", got.Version)
	}
}
