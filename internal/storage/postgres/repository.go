package postgres

import (
	"context"

	"brims/internal/domain"
)

// The methods below let *Postgres serve as the console backend directly.

func (p *Postgres) ListIncidents(ctx context.Context, scope domain.Scope) ([]domain.Incident, error) {
	return p.Incidents.List(ctx, scope)
}

func (p *Postgres) ListStats(ctx context.Context, scope domain.Scope) (domain.IncidentStats, error) {
	return p.Incidents.Stats(ctx, scope)
}

func (p *Postgres) CreateIncident(ctx context.Context, payload domain.IncidentPayload) (*domain.Incident, error) {
	return p.Incidents.Create(ctx, payload)
}

func (p *Postgres) UpdateIncident(ctx context.Context, id string, patch domain.IncidentPatch) (*domain.Incident, error) {
	return p.Incidents.Update(ctx, id, patch)
}

func (p *Postgres) DeleteIncident(ctx context.Context, id string) error {
	return p.Incidents.Delete(ctx, id)
}

func (p *Postgres) SaveSubRecord(ctx context.Context, incidentID string, kind domain.SubRecordKind, payload any) error {
	return p.Incidents.SaveSubRecord(ctx, incidentID, kind, payload)
}

func (p *Postgres) MarkNotificationRead(ctx context.Context, id string) error {
	return p.Notifications.MarkRead(ctx, id)
}

func (p *Postgres) MarkAllNotificationsRead(ctx context.Context) error {
	return p.Notifications.MarkAllRead(ctx)
}

func (p *Postgres) DeleteAllNotifications(ctx context.Context) error {
	return p.Notifications.DeleteAll(ctx)
}
