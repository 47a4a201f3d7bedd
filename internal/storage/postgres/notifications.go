package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"brims/pkg/e"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	const op = "postgres.Notification.MarkRead"

	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%s: notification %q: %w", op, id, e.ErrNotFound)
	}

	cmd, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read_at = COALESCE(read_at, now()) WHERE id = $1`, uid)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context) error {
	const op = "postgres.Notification.MarkAllRead"

	if _, err := r.pool.Exec(ctx, `UPDATE notifications SET read_at = now() WHERE read_at IS NULL`); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *NotificationRepo) DeleteAll(ctx context.Context) error {
	const op = "postgres.Notification.DeleteAll"

	if _, err := r.pool.Exec(ctx, `DELETE FROM notifications`); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	const op = "postgres.Notification.CountUnread"

	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE read_at IS NULL`).Scan(&n); err != nil {
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}
