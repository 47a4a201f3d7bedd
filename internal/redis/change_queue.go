package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"brims/internal/domain"
	"brims/pkg/e"
)

// ChangeQueue is a FIFO list of store change events waiting for webhook
// delivery.
type ChangeQueue struct {
	client *redis.Client
	key    string
	maxLen int64
}

func NewChangeQueue(client *redis.Client, key string) *ChangeQueue {
	return &ChangeQueue{client: client, key: key, maxLen: 1000}
}

// Enqueue pushes ev and trims the list so an unreachable webhook can not grow
// it without bound. The oldest events are dropped first.
func (q *ChangeQueue) Enqueue(ctx context.Context, ev domain.ChangeEvent) error {
	const op = "redis.ChangeQueue.Enqueue"

	b, err := json.Marshal(ev)
	if err != nil {
		return e.Wrap(op, err)
	}
	pipe := q.client.TxPipeline()
	pipe.LPush(ctx, q.key, b)
	pipe.LTrim(ctx, q.key, 0, q.maxLen-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

// Dequeue blocks up to timeout for the oldest event. It returns
// e.ErrQueueEmpty when nothing arrived in time.
func (q *ChangeQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.ChangeEvent, error) {
	const op = "redis.ChangeQueue.Dequeue"

	var ev domain.ChangeEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, e.Wrap(op, err)
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, e.Wrap(op, err)
	}
	return ev, nil
}

func (q *ChangeQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
