package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"brims/internal/config"
	"brims/internal/domain"
	"brims/internal/service"
	"brims/pkg/e"

	mock_service "brims/internal/service/mocks"
)

func TestWebhookSender_DeliversEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ev := domain.ChangeEvent{ID: uuid.New(), Kind: domain.ChangeReloaded, Version: 4, Total: 12}

	received := make(chan domain.ChangeEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got domain.ChangeEvent
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if r.Header.Get("X-Event-ID") != ev.ID.String() {
			t.Errorf("missing event id header")
		}
		received <- got
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := mock_service.NewMockChangeSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(ev, nil),
		source.EXPECT().Dequeue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ time.Duration) (domain.ChangeEvent, error) {
				cancel()
				return domain.ChangeEvent{}, e.ErrQueueEmpty
			}).AnyTimes(),
	)

	s := service.NewWebhookSender(discardLogger(), config.WebhookConfig{URL: srv.URL}, source)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case got := <-received:
		if got.Version != 4 || got.Kind != domain.ChangeReloaded {
			t.Fatalf("unexpected event: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("webhook not delivered")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sender did not stop")
	}
}

func TestWebhookSender_RetriesOnFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := mock_service.NewMockChangeSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Dequeue(gomock.Any(), gomock.Any()).Return(domain.ChangeEvent{ID: uuid.New()}, nil),
		source.EXPECT().Dequeue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Duration) (domain.ChangeEvent, error) {
				cancel()
				return domain.ChangeEvent{}, e.ErrQueueEmpty
			}).AnyTimes(),
	)

	s := service.NewWebhookSender(discardLogger(), config.WebhookConfig{URL: srv.URL}, source)
	s.Run(ctx)

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestNotifier_ForwardsEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mock_service.NewMockChangeQueue(ctrl)
	events := make(chan domain.ChangeEvent, 2)
	events <- domain.ChangeEvent{Kind: domain.ChangeReloaded, Version: 1}
	events <- domain.ChangeEvent{Kind: domain.ChangeRemoved, Version: 2, SubjectID: "42"}
	close(events)

	gomock.InOrder(
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil),
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev domain.ChangeEvent) error {
				if ev.SubjectID != "42" {
					t.Fatalf("unexpected event: %+v", ev)
				}
				return e.ErrTransport
			}),
	)

	service.NewNotifier(queue, discardLogger()).Run(context.Background(), events)
}
