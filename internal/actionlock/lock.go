package actionlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brims/pkg/e"
)

// AllSubjects marks a collection-wide action (mark all read, delete all).
const AllSubjects = "*"

// Observer receives lock transitions. Implementations must not block.
type Observer interface {
	Acquired(subject string)
	Rejected(subject, holder string)
	Released(subject string, held time.Duration)
}

type State struct {
	Busy    bool      `json:"busy"`
	Subject string    `json:"subject,omitempty"`
	Since   time.Time `json:"since,omitempty"`
	// Hold is set when the lock was taken with TryAcquire rather than by a
	// running action.
	Hold bool `json:"hold"`
}

// Token identifies one acquisition. Only the current token releases the lock.
type Token uint64

// Lock admits at most one mutating action at a time. It is either idle or
// busy with exactly one subject; acquire and release are the only
// transitions, and a release must present the token of the acquisition.
type Lock struct {
	mu       sync.Mutex
	busy     bool
	subject  string
	since    time.Time
	hold     bool
	gen      uint64
	timeout  time.Duration
	now      func() time.Time
	observer Observer
}

type Option func(*Lock)

// WithTimeout bounds the context handed to Do. Zero keeps the lock held for
// as long as the action runs.
func WithTimeout(d time.Duration) Option {
	return func(l *Lock) { l.timeout = d }
}

func WithObserver(o Observer) Option {
	return func(l *Lock) { l.observer = o }
}

func WithClock(now func() time.Time) Option {
	return func(l *Lock) { l.now = now }
}

func New(opts ...Option) *Lock {
	l := &Lock{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TryAcquire moves the lock from idle to busy(subject) on behalf of a caller
// that releases it later, either with Release(token) or ReleaseHold(subject).
// It never waits.
func (l *Lock) TryAcquire(subject string) (Token, bool) {
	return l.acquire(subject, true)
}

func (l *Lock) acquire(subject string, hold bool) (Token, bool) {
	if subject == "" {
		return 0, false
	}
	l.mu.Lock()
	if l.busy {
		holder := l.subject
		l.mu.Unlock()
		if l.observer != nil {
			l.observer.Rejected(subject, holder)
		}
		return 0, false
	}
	l.gen++
	tok := Token(l.gen)
	l.busy = true
	l.subject = subject
	l.since = l.now()
	l.hold = hold
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.Acquired(subject)
	}
	return tok, true
}

// Release returns the lock to idle if tok is the current acquisition. It
// reports false when the lock is idle or held under another token.
func (l *Lock) Release(tok Token) bool {
	l.mu.Lock()
	if !l.busy || uint64(tok) != l.gen {
		l.mu.Unlock()
		return false
	}
	return l.releaseLocked()
}

// ReleaseHold frees a lock taken with TryAcquire for subject. A lock held by
// a running Do is never released this way.
func (l *Lock) ReleaseHold(subject string) bool {
	l.mu.Lock()
	if !l.busy || !l.hold || l.subject != subject {
		l.mu.Unlock()
		return false
	}
	return l.releaseLocked()
}

// releaseLocked expects l.mu held and unlocks it.
func (l *Lock) releaseLocked() bool {
	subject, held := l.subject, l.now().Sub(l.since)
	l.busy = false
	l.subject = ""
	l.since = time.Time{}
	l.hold = false
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.Released(subject, held)
	}
	return true
}

func (l *Lock) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{Busy: l.busy, Subject: l.subject, Since: l.since, Hold: l.hold}
}

func (l *Lock) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// Generation counts acquisitions so far. A reader that saw the same
// generation before and after some work knows no action started meanwhile.
func (l *Lock) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// IsBusy reports whether the row identified by subject should be shown as
// busy: either it is the current subject or a collection-wide action runs.
func (l *Lock) IsBusy(subject string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.busy {
		return false
	}
	return l.subject == subject || l.subject == AllSubjects
}

// Do runs fn while holding the lock for subject. It returns e.ErrBusy without
// calling fn when another action is in flight. The lock is released on every
// exit path of fn, panics included, and only if fn's acquisition still owns it.
func (l *Lock) Do(ctx context.Context, subject string, fn func(ctx context.Context) error) error {
	const op = "actionlock.Lock.Do"

	if subject == "" {
		return fmt.Errorf("%s: empty subject: %w", op, e.ErrInvalidInput)
	}
	tok, ok := l.acquire(subject, false)
	if !ok {
		return e.ErrBusy
	}
	defer l.Release(tok)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return fn(ctx)
}
