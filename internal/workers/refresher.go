package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"brims/pkg/e"
)

// Reloader is the part of the sync coordinator the refresher drives.
type Reloader interface {
	Reload(ctx context.Context, trigger string) error
}

// BusyChecker reports whether a mutating action is in flight.
type BusyChecker interface {
	Busy() bool
}

// Refresher reloads the collection store on a cron schedule. A tick that
// lands while a mutating action runs is skipped; that action reloads the
// store itself when it completes.
type Refresher struct {
	cron     *cron.Cron
	reloader Reloader
	busy     BusyChecker
	trigger  string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewRefresher(reloader Reloader, busy BusyChecker, trigger string, logger *slog.Logger) *Refresher {
	return &Refresher{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		reloader: reloader,
		busy:     busy,
		trigger:  trigger,
		timeout:  30 * time.Second,
		logger:   logger,
	}
}

// Start registers the refresh job and starts the scheduler. It fails on an
// unparsable schedule.
func (r *Refresher) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return fmt.Errorf("workers.Refresher.Start: schedule %q: %w", schedule, err)
	}
	r.cron.Start()
	r.logger.Info("refresher started", slog.String("schedule", schedule))
	return nil
}

func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("refresher stopped")
}

func (r *Refresher) tick() {
	if r.busy != nil && r.busy.Busy() {
		r.logger.Debug("refresh skipped, action in progress")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	err := r.reloader.Reload(ctx, r.trigger)
	switch {
	case err == nil:
	case errors.Is(err, e.ErrBusy):
		r.logger.Debug("refresh skipped, action started during fetch")
	default:
		r.logger.Warn("scheduled refresh failed", slog.Any("error", err))
	}
}
