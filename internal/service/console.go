package service

import (
	"context"
	"fmt"

	"brims/internal/actionlock"
	"brims/internal/domain"
	"brims/internal/policy"
	"brims/internal/query"
	"brims/internal/store"
	"brims/pkg/e"
)

// Console is the read side of the list screen. It never calls the backend
// except through Refresh.
type Console struct {
	store  *store.Store
	policy *policy.Engine
	lock   *actionlock.Lock
	sync   *Coordinator
}

func NewConsole(st *store.Store, engine *policy.Engine, lock *actionlock.Lock, coordinator *Coordinator) *Console {
	return &Console{store: st, policy: engine, lock: lock, sync: coordinator}
}

// GetVisiblePage runs the query pipeline over the current snapshot and
// decorates each row with the actor's policy decision and the busy flag.
func (c *Console) GetVisiblePage(actor domain.Actor, st domain.QueryState) domain.ListIncidentsResponse {
	page := query.Run(c.store.Incidents(), st)

	items := make([]domain.PageItem, 0, len(page.Items))
	for _, inc := range page.Items {
		d := c.policy.Evaluate(actor.Role, inc)
		items = append(items, domain.PageItem{
			Incident:  inc,
			CanEdit:   d.CanEdit,
			CanDelete: d.CanDelete,
			Reason:    string(d.Reason),
			Busy:      c.lock.IsBusy(inc.ID),
		})
	}

	return domain.ListIncidentsResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

func (c *Console) EvaluatePolicy(actor domain.Actor, id string) (policy.Decision, error) {
	inc, ok := c.store.Find(id)
	if !ok {
		return policy.Decision{}, fmt.Errorf("service.Console.EvaluatePolicy: incident %s: %w", id, e.ErrNotFound)
	}
	return c.policy.Evaluate(actor.Role, inc), nil
}

func (c *Console) Stats() domain.IncidentStats {
	return c.store.Stats()
}

func (c *Console) Snapshot() store.Snapshot {
	return c.store.Snapshot()
}

func (c *Console) LockState() actionlock.State {
	return c.lock.State()
}

// Acquire claims the action lock for an out-of-band action, for instance a
// form held open by an operator. It returns e.ErrBusy when already held.
func (c *Console) Acquire(subject string) error {
	if subject == "" {
		return fmt.Errorf("service.Console.Acquire: empty subject: %w", e.ErrInvalidInput)
	}
	if _, ok := c.lock.TryAcquire(subject); !ok {
		return e.ErrBusy
	}
	return nil
}

// Release frees a hold taken with Acquire for subject. It reports false when
// nothing is held for subject; a running action is never released.
func (c *Console) Release(subject string) (bool, error) {
	if subject == "" {
		return false, fmt.Errorf("service.Console.Release: empty subject: %w", e.ErrInvalidInput)
	}
	return c.lock.ReleaseHold(subject), nil
}

// Refresh reloads the store from the backend on demand.
func (c *Console) Refresh(ctx context.Context) error {
	return c.sync.Reload(ctx, TriggerManual)
}
