package service

import (
	"context"
	"time"

	"brims/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Backend is the authoritative incident source. Every method may fail with a
// transport, authorization or validation error.
type Backend interface {
	ListIncidents(ctx context.Context, scope domain.Scope) ([]domain.Incident, error)
	ListStats(ctx context.Context, scope domain.Scope) (domain.IncidentStats, error)
	CreateIncident(ctx context.Context, payload domain.IncidentPayload) (*domain.Incident, error)
	UpdateIncident(ctx context.Context, id string, patch domain.IncidentPatch) (*domain.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
	SaveSubRecord(ctx context.Context, incidentID string, kind domain.SubRecordKind, payload any) error
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteAllNotifications(ctx context.Context) error
}

// SnapshotCache keeps the last confirmed collection between restarts.
// Load returns nil, nil on a miss.
type SnapshotCache interface {
	Load(ctx context.Context, scope domain.Scope) (*domain.CachedSnapshot, error)
	Save(ctx context.Context, scope domain.Scope, snap domain.CachedSnapshot, ttl time.Duration) error
}

type ChangeQueue interface {
	Enqueue(ctx context.Context, ev domain.ChangeEvent) error
}

type ChangeSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.ChangeEvent, error)
}

type Metrics interface {
	ObserveAction(action, outcome string, d time.Duration)
	ObserveReload(trigger string, err error, size int)
}

type Service struct {
	Coordinator *Coordinator
	Actions     *Actions
	Console     *Console
}

func NewService(coordinator *Coordinator, actions *Actions, console *Console) *Service {
	return &Service{
		Coordinator: coordinator,
		Actions:     actions,
		Console:     console,
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveAction(string, string, time.Duration) {}
func (nopMetrics) ObserveReload(string, error, int)            {}
