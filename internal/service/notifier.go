package service

import (
	"context"
	"log/slog"

	"brims/internal/domain"
)

// Notifier forwards store change events to the outbound change queue.
type Notifier struct {
	queue  ChangeQueue
	logger *slog.Logger
}

func NewNotifier(queue ChangeQueue, logger *slog.Logger) *Notifier {
	return &Notifier{queue: queue, logger: logger}
}

// Run drains events until ctx is done or the channel is closed. A failed
// enqueue is logged and dropped.
func (n *Notifier) Run(ctx context.Context, events <-chan domain.ChangeEvent) {
	n.logger.Info("notifier started")
	for {
		select {
		case <-ctx.Done():
			n.logger.Info("notifier stopped", slog.String("reason", ctx.Err().Error()))
			return
		case ev, ok := <-events:
			if !ok {
				n.logger.Info("notifier stopped", slog.String("reason", "subscription closed"))
				return
			}
			if err := n.queue.Enqueue(ctx, ev); err != nil {
				n.logger.Warn("enqueue change event failed",
					slog.String("kind", string(ev.Kind)),
					slog.Uint64("version", ev.Version),
					slog.Any("error", err),
				)
			}
		}
	}
}
