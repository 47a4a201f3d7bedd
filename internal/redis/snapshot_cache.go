package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"brims/internal/domain"
	"brims/pkg/e"
)

// SnapshotCache keeps the last confirmed incident list and stats per scope so
// a restarted console can serve something before the backend answers.
type SnapshotCache struct {
	client *goredis.Client
	prefix string
}

func NewSnapshotCache(r *Redis) *SnapshotCache {
	return &SnapshotCache{
		client: r.Client,
		prefix: "brims:snapshot:",
	}
}

func (c *SnapshotCache) key(scope domain.Scope) string {
	return c.prefix + scope.String()
}

func (c *SnapshotCache) Load(ctx context.Context, scope domain.Scope) (*domain.CachedSnapshot, error) {
	const op = "redis.SnapshotCache.Load"

	data, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(op, err)
	}

	var snap domain.CachedSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, e.Wrap(op, err)
	}
	return &snap, nil
}

func (c *SnapshotCache) Save(ctx context.Context, scope domain.Scope, snap domain.CachedSnapshot, ttl time.Duration) error {
	const op = "redis.SnapshotCache.Save"

	b, err := json.Marshal(snap)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := c.client.Set(ctx, c.key(scope), b, ttl).Err(); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
