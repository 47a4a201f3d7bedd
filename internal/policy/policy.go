package policy

import (
	"time"

	"brims/internal/domain"
)

type ReasonCode string

const (
	ReasonNone         ReasonCode = ""
	ReasonStatusLocked ReasonCode = "status-locked"
	ReasonTimeExpired  ReasonCode = "time-expired"
	ReasonUnauthorized ReasonCode = "unauthorized"
	// ReasonServerLocked is used when the local rules allow the action but the
	// backend has switched it off for this record.
	ReasonServerLocked ReasonCode = "server-locked"
)

const DefaultEditWindow = time.Hour

type Decision struct {
	CanEdit   bool       `json:"can_edit"`
	CanDelete bool       `json:"can_delete"`
	Reason    ReasonCode `json:"reason,omitempty"`
}

func allow() Decision { return Decision{CanEdit: true, CanDelete: true} }

func deny(reason ReasonCode) Decision { return Decision{Reason: reason} }

type rule func(e *Engine, inc domain.Incident, now time.Time) Decision

// Engine decides whether an actor may mutate an incident right now. It holds
// no state besides configuration and is safe for concurrent use.
type Engine struct {
	window time.Duration
	now    func() time.Time
	rules  map[domain.Role]rule
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithEditWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.window = d
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		window: DefaultEditWindow,
		now:    time.Now,
		rules: map[domain.Role]rule{
			domain.RoleAdmin:    adminRule,
			domain.RoleBarangay: barangayRule,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func adminRule(_ *Engine, _ domain.Incident, _ time.Time) Decision {
	return allow()
}

func barangayRule(e *Engine, inc domain.Incident, now time.Time) Decision {
	if inc.Status != domain.StatusReported {
		return deny(ReasonStatusLocked)
	}
	if inc.CreatedAt.IsZero() || now.Sub(inc.CreatedAt) > e.window {
		return deny(ReasonTimeExpired)
	}
	return allow()
}

func (e *Engine) Evaluate(role domain.Role, inc domain.Incident) Decision {
	return e.EvaluateAt(role, inc, e.now())
}

// EvaluateAt is Evaluate with an explicit clock reading.
func (e *Engine) EvaluateAt(role domain.Role, inc domain.Incident, now time.Time) Decision {
	r, ok := e.rules[role]
	if !ok {
		return deny(ReasonUnauthorized)
	}
	d := r(e, inc, now)
	return applyServerOverrides(d, inc)
}

// applyServerOverrides intersects the local decision with the backend flags.
// An explicit false always wins; a missing flag leaves the decision as is.
func applyServerOverrides(d Decision, inc domain.Incident) Decision {
	lockedByServer := false
	if inc.ServerEditable != nil && !*inc.ServerEditable && d.CanEdit {
		d.CanEdit = false
		lockedByServer = true
	}
	if inc.ServerDeletable != nil && !*inc.ServerDeletable && d.CanDelete {
		d.CanDelete = false
		lockedByServer = true
	}
	if lockedByServer && d.Reason == ReasonNone {
		d.Reason = ReasonServerLocked
	}
	return d
}

// Recognizes reports whether role has a rule at all.
func (e *Engine) Recognizes(role domain.Role) bool {
	_, ok := e.rules[role]
	return ok
}

func (e *Engine) CanCreate(role domain.Role) Decision {
	if !e.Recognizes(role) {
		return deny(ReasonUnauthorized)
	}
	return Decision{CanEdit: true}
}
