package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"brims/internal/domain"
)

type Snapshot struct {
	Incidents []domain.Incident    `json:"incidents"`
	Stats     domain.IncidentStats `json:"stats"`
	Scope     domain.Scope         `json:"scope"`
	Version   uint64               `json:"version"`
	LoadedAt  time.Time            `json:"loaded_at"`
	// Stale is set while the content comes from the snapshot cache and has
	// not been confirmed by the backend yet.
	Stale bool `json:"stale"`
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Incidents = make([]domain.Incident, len(s.Incidents))
	for i, inc := range s.Incidents {
		out.Incidents[i] = inc.Clone()
	}
	return out
}

// Store owns the in-memory incident list. Only the sync coordinator writes
// to it; every reader gets a copy.
type Store struct {
	mu     sync.RWMutex
	snap   Snapshot
	now    func() time.Time
	subs   map[int]chan domain.ChangeEvent
	nextID int
}

func New(scope domain.Scope) *Store {
	return &Store{
		snap: Snapshot{Scope: scope, Incidents: []domain.Incident{}},
		now:  time.Now,
		subs: make(map[int]chan domain.ChangeEvent),
	}
}

// Replace swaps the whole snapshot. Nothing is merged.
func (s *Store) Replace(incidents []domain.Incident, stats domain.IncidentStats, stale bool) domain.ChangeEvent {
	kind := domain.ChangeReloaded
	if stale {
		kind = domain.ChangeWarmed
	}

	s.mu.Lock()
	next := Snapshot{
		Incidents: make([]domain.Incident, len(incidents)),
		Stats:     stats,
		Scope:     s.snap.Scope,
		Version:   s.snap.Version + 1,
		LoadedAt:  s.now().UTC(),
		Stale:     stale,
	}
	for i, inc := range incidents {
		next.Incidents[i] = inc.Clone()
	}
	s.snap = next
	ev := s.eventLocked(kind, "")
	s.mu.Unlock()

	s.publish(ev)
	return ev
}

// Remove drops one incident from the list. Stats are left as they are until
// the next reload.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	idx := -1
	for i, inc := range s.snap.Incidents {
		if inc.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	incidents := make([]domain.Incident, 0, len(s.snap.Incidents)-1)
	incidents = append(incidents, s.snap.Incidents[:idx]...)
	incidents = append(incidents, s.snap.Incidents[idx+1:]...)
	s.snap.Incidents = incidents
	s.snap.Version++
	ev := s.eventLocked(domain.ChangeRemoved, id)
	s.mu.Unlock()

	s.publish(ev)
	return true
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

func (s *Store) Incidents() []domain.Incident {
	return s.Snapshot().Incidents
}

func (s *Store) Stats() domain.IncidentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Stats
}

func (s *Store) Scope() domain.Scope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Scope
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Version
}

func (s *Store) Find(id string) (domain.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inc := range s.snap.Incidents {
		if inc.ID == id {
			return inc.Clone(), true
		}
	}
	return domain.Incident{}, false
}

// Subscribe returns a channel receiving change events. A slow subscriber
// only misses intermediate events, it never blocks writers. The returned
// func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan domain.ChangeEvent, func()) {
	ch := make(chan domain.ChangeEvent, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) eventLocked(kind domain.ChangeKind, subject string) domain.ChangeEvent {
	return domain.ChangeEvent{
		ID:        uuid.New(),
		Kind:      kind,
		SubjectID: subject,
		Version:   s.snap.Version,
		Total:     len(s.snap.Incidents),
		Stats:     s.snap.Stats,
		At:        s.now().UTC(),
	}
}

func (s *Store) publish(ev domain.ChangeEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// drop the oldest pending event and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}
