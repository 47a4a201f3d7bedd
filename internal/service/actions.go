package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"brims/internal/actionlock"
	"brims/internal/domain"
	"brims/internal/policy"
	"brims/internal/store"
	"brims/pkg/e"
	"brims/pkg/validator"
)

const (
	ActionCreate             = "create"
	ActionUpdate             = "update"
	ActionChangeStatus       = "change_status"
	ActionDelete             = "delete"
	ActionSavePopulation     = "save_population"
	ActionSaveInfrastructure = "save_infrastructure"
	ActionMarkRead           = "mark_read"
	ActionMarkAllRead        = "mark_all_read"
	ActionDeleteAllNotifs    = "delete_all_notifications"
)

// Subject used while a new incident is being created; it has no id yet.
const createSubject = "new"

func notificationSubject(id string) string { return "notification:" + id }

// Actions runs every mutating operation through the same sequence:
// validate, acquire the action lock, check policy, call the backend,
// reload the store, release.
type Actions struct {
	lock    *actionlock.Lock
	policy  *policy.Engine
	store   *store.Store
	backend Backend
	sync    *Coordinator
	metrics Metrics
	logger  *slog.Logger
}

func NewActions(
	lock *actionlock.Lock,
	engine *policy.Engine,
	st *store.Store,
	backend Backend,
	coordinator *Coordinator,
	metrics Metrics,
	logger *slog.Logger,
) *Actions {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Actions{
		lock:    lock,
		policy:  engine,
		store:   st,
		backend: backend,
		sync:    coordinator,
		metrics: metrics,
		logger:  logger,
	}
}

func (a *Actions) Create(ctx context.Context, actor domain.Actor, payload domain.IncidentPayload) (*domain.Incident, error) {
	if err := validator.Check(payload); err != nil {
		a.observe(ActionCreate, err, 0)
		return nil, err
	}

	var created *domain.Incident
	err := a.run(ctx, ActionCreate, actor, createSubject, func(ctx context.Context) error {
		if d := a.policy.CanCreate(actor.Role); !d.CanEdit {
			return e.NewPolicyError(string(d.Reason))
		}
		inc, err := a.backend.CreateIncident(ctx, payload)
		if err != nil {
			return err
		}
		created = inc
		a.reloadAfter(ctx, ActionCreate, inc.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *Actions) Update(ctx context.Context, actor domain.Actor, id string, patch domain.IncidentPatch) (*domain.Incident, error) {
	if err := validator.Check(patch); err != nil {
		a.observe(ActionUpdate, err, 0)
		return nil, err
	}
	return a.update(ctx, ActionUpdate, actor, id, patch)
}

// ChangeStatus moves an incident to another status. Moving to Archived is
// how records are retired; nothing is deleted.
func (a *Actions) ChangeStatus(ctx context.Context, actor domain.Actor, id string, req domain.StatusChangeRequest) (*domain.Incident, error) {
	if err := validator.Check(req); err != nil {
		a.observe(ActionChangeStatus, err, 0)
		return nil, err
	}
	status := req.Status
	return a.update(ctx, ActionChangeStatus, actor, id, domain.IncidentPatch{Status: &status})
}

func (a *Actions) update(ctx context.Context, action string, actor domain.Actor, id string, patch domain.IncidentPatch) (*domain.Incident, error) {
	var updated *domain.Incident
	err := a.run(ctx, action, actor, id, func(ctx context.Context) error {
		if err := a.authorize(actor, id, false); err != nil {
			return err
		}
		inc, err := a.backend.UpdateIncident(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = inc
		a.reloadAfter(ctx, action, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (a *Actions) Delete(ctx context.Context, actor domain.Actor, id string) error {
	return a.run(ctx, ActionDelete, actor, id, func(ctx context.Context) error {
		if err := a.authorize(actor, id, true); err != nil {
			return err
		}
		if err := a.backend.DeleteIncident(ctx, id); err != nil {
			return err
		}
		a.sync.Removed(id)
		a.reloadAfter(ctx, ActionDelete, id)
		return nil
	})
}

func (a *Actions) SavePopulation(ctx context.Context, actor domain.Actor, id string, data domain.PopulationData) error {
	if err := validator.Check(data); err != nil {
		a.observe(ActionSavePopulation, err, 0)
		return err
	}
	return a.saveSubRecord(ctx, ActionSavePopulation, actor, id, domain.SubRecordPopulation, data)
}

func (a *Actions) SaveInfrastructure(ctx context.Context, actor domain.Actor, id string, data domain.InfrastructureStatus) error {
	if err := validator.Check(data); err != nil {
		a.observe(ActionSaveInfrastructure, err, 0)
		return err
	}
	return a.saveSubRecord(ctx, ActionSaveInfrastructure, actor, id, domain.SubRecordInfrastructure, data)
}

func (a *Actions) saveSubRecord(ctx context.Context, action string, actor domain.Actor, id string, kind domain.SubRecordKind, payload any) error {
	return a.run(ctx, action, actor, id, func(ctx context.Context) error {
		if err := a.authorize(actor, id, false); err != nil {
			return err
		}
		if err := a.backend.SaveSubRecord(ctx, id, kind, payload); err != nil {
			return err
		}
		a.reloadAfter(ctx, action, id)
		return nil
	})
}

func (a *Actions) MarkNotificationRead(ctx context.Context, actor domain.Actor, id string) error {
	if id == "" {
		return fmt.Errorf("service.Actions.MarkNotificationRead: empty id: %w", e.ErrInvalidInput)
	}
	return a.run(ctx, ActionMarkRead, actor, notificationSubject(id), func(ctx context.Context) error {
		if !a.policy.Recognizes(actor.Role) {
			return e.NewPolicyError(string(policy.ReasonUnauthorized))
		}
		return a.backend.MarkNotificationRead(ctx, id)
	})
}

func (a *Actions) MarkAllNotificationsRead(ctx context.Context, actor domain.Actor) error {
	return a.run(ctx, ActionMarkAllRead, actor, actionlock.AllSubjects, func(ctx context.Context) error {
		if !a.policy.Recognizes(actor.Role) {
			return e.NewPolicyError(string(policy.ReasonUnauthorized))
		}
		return a.backend.MarkAllNotificationsRead(ctx)
	})
}

func (a *Actions) DeleteAllNotifications(ctx context.Context, actor domain.Actor) error {
	return a.run(ctx, ActionDeleteAllNotifs, actor, actionlock.AllSubjects, func(ctx context.Context) error {
		if !a.policy.Recognizes(actor.Role) {
			return e.NewPolicyError(string(policy.ReasonUnauthorized))
		}
		return a.backend.DeleteAllNotifications(ctx)
	})
}

// authorize gates an action on one incident with the policy decision
// computed from the current snapshot.
func (a *Actions) authorize(actor domain.Actor, id string, deleting bool) error {
	inc, ok := a.store.Find(id)
	if !ok {
		return fmt.Errorf("service.Actions.authorize: incident %s: %w", id, e.ErrNotFound)
	}
	d := a.policy.Evaluate(actor.Role, inc)
	allowed := d.CanEdit
	if deleting {
		allowed = d.CanDelete
	}
	if !allowed {
		return e.NewPolicyError(string(d.Reason))
	}
	return nil
}

// reloadAfter refreshes the store after a confirmed mutation. A failed
// refresh does not undo the mutation; the next reload catches up.
func (a *Actions) reloadAfter(ctx context.Context, action, id string) {
	if err := a.sync.Reload(ctx, TriggerMutation); err != nil {
		a.logger.Warn("refresh after mutation failed",
			slog.String("action", action),
			slog.String("subject", id),
			slog.Any("error", err),
		)
	}
}

func (a *Actions) run(ctx context.Context, action string, actor domain.Actor, subject string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := a.lock.Do(ctx, subject, fn)
	elapsed := time.Since(start)
	a.observe(action, err, elapsed)

	l := a.logger.With(
		slog.String("action", action),
		slog.String("subject", subject),
		slog.String("actor", actor.ID),
		slog.String("role", string(actor.Role)),
	)
	switch outcome(err) {
	case "ok":
		l.Info("action completed", slog.Duration("latency", elapsed))
	case "rejected":
		l.Warn("action rejected, another action is in progress", slog.String("holder", a.lock.State().Subject))
	case "denied", "invalid":
		l.Info("action refused", slog.Any("error", err))
	default:
		l.Error("action failed", slog.Any("error", err), slog.Duration("latency", elapsed))
	}
	return err
}

func (a *Actions) observe(action string, err error, d time.Duration) {
	a.metrics.ObserveAction(action, outcome(err), d)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, e.ErrBusy):
		return "rejected"
	}
	if _, ok := e.IsPolicy(err); ok {
		return "denied"
	}
	if _, ok := e.IsValidation(err); ok {
		return "invalid"
	}
	return "error"
}
