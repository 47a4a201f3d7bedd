package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"brims/internal/domain"
	"brims/internal/store"
	"brims/pkg/e"
)

const (
	TriggerStartup  = "startup"
	TriggerManual   = "manual"
	TriggerMutation = "mutation"
	TriggerSchedule = "schedule"
)

// Coordinator is the only writer of the collection store. It re-derives the
// whole snapshot from the backend instead of patching records locally.
type Coordinator struct {
	backend  Backend
	store    *store.Store
	cache    SnapshotCache
	cacheTTL time.Duration
	metrics  Metrics
	logger   *slog.Logger

	gate     ActionGate

	// guards every store write, so an older fetch can not overwrite a newer
	// reload or a local removal
	reloadMu sync.Mutex
}

// ActionGate is the view of the action lock the coordinator needs. Generation
// moves on every admitted action.
type ActionGate interface {
	Busy() bool
	Generation() uint64
}

type CoordinatorOption func(*Coordinator)

// WithActionGate makes startup, manual and scheduled reloads yield to
// mutating actions: they are refused while one runs and their result is
// dropped when one started during the fetch.
func WithActionGate(g ActionGate) CoordinatorOption {
	return func(c *Coordinator) { c.gate = g }
}

func NewCoordinator(
	backend Backend,
	st *store.Store,
	cache SnapshotCache,
	cacheTTL time.Duration,
	metrics Metrics,
	logger *slog.Logger,
	opts ...CoordinatorOption,
) *Coordinator {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	c := &Coordinator{
		backend:  backend,
		store:    st,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reload fetches the list, then the stats, and replaces the snapshot only
// when both calls succeed. On failure the current snapshot is kept.
// Without TriggerMutation, a gated reload returns e.ErrBusy instead of
// racing a mutating action.
func (c *Coordinator) Reload(ctx context.Context, trigger string) error {
	const op = "service.Coordinator.Reload"

	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	gated := c.gate != nil && trigger != TriggerMutation
	var gen uint64
	if gated {
		if c.gate.Busy() {
			return fmt.Errorf("%s: %s: %w", op, trigger, e.ErrBusy)
		}
		gen = c.gate.Generation()
	}

	scope := c.store.Scope()
	start := time.Now()

	incidents, err := c.backend.ListIncidents(ctx, scope)
	if err != nil {
		c.metrics.ObserveReload(trigger, err, 0)
		c.logger.Warn("reload list failed",
			slog.String("op", op),
			slog.String("trigger", trigger),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: list: %w", op, err)
	}

	stats, err := c.backend.ListStats(ctx, scope)
	if err != nil {
		c.metrics.ObserveReload(trigger, err, 0)
		c.logger.Warn("reload stats failed",
			slog.String("op", op),
			slog.String("trigger", trigger),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: stats: %w", op, err)
	}

	if gated && (c.gate.Busy() || c.gate.Generation() != gen) {
		c.logger.Debug("reload discarded, action started during fetch",
			slog.String("trigger", trigger),
			slog.Duration("latency", time.Since(start)),
		)
		return fmt.Errorf("%s: %s: %w", op, trigger, e.ErrBusy)
	}

	ev := c.store.Replace(incidents, stats, false)
	c.metrics.ObserveReload(trigger, nil, len(incidents))
	c.logger.Debug("store reloaded",
		slog.String("trigger", trigger),
		slog.Int("incidents", len(incidents)),
		slog.Uint64("version", ev.Version),
		slog.Duration("latency", time.Since(start)),
	)

	c.saveCache(ctx, scope, incidents, stats)
	return nil
}

// WarmStart seeds an empty store from the snapshot cache. The content is
// marked stale until the first successful Reload.
func (c *Coordinator) WarmStart(ctx context.Context) (bool, error) {
	const op = "service.Coordinator.WarmStart"

	if c.cache == nil {
		return false, nil
	}

	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	if c.store.Version() > 0 {
		return false, nil
	}

	snap, err := c.cache.Load(ctx, c.store.Scope())
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if snap == nil {
		return false, nil
	}

	c.store.Replace(snap.Incidents, snap.Stats, true)
	c.logger.Info("store warmed from cache",
		slog.Int("incidents", len(snap.Incidents)),
		slog.Time("saved_at", snap.SavedAt),
	)
	return true, nil
}

// Removed applies a confirmed delete to the local list right away. It waits
// for a reload in flight so that reload can not put the record back.
func (c *Coordinator) Removed(id string) {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	if c.store.Remove(id) {
		c.logger.Debug("incident removed locally", slog.String("id", id))
	}
}

func (c *Coordinator) saveCache(ctx context.Context, scope domain.Scope, incidents []domain.Incident, stats domain.IncidentStats) {
	if c.cache == nil {
		return
	}
	snap := domain.CachedSnapshot{Incidents: incidents, Stats: stats, SavedAt: time.Now().UTC()}
	if err := c.cache.Save(ctx, scope, snap, c.cacheTTL); err != nil {
		c.logger.Warn("snapshot cache save failed", slog.Any("error", err))
	}
}
