package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const connectionsKey = "ws:connections"

// RedisConnectionRegistry is the durable connection registry: one Redis set
// holding every live connection id. SADD/SREM are single-key atomic writes,
// so concurrent connects, disconnects, and prunes need no extra locking, and
// both operations are naturally idempotent.
type RedisConnectionRegistry struct {
	rdb *redis.Client
}

func NewRedisConnectionRegistry(rdb *redis.Client) *RedisConnectionRegistry {
	return &RedisConnectionRegistry{rdb: rdb}
}

func (r *RedisConnectionRegistry) Add(ctx context.Context, connectionID string) error {
	return r.rdb.SAdd(ctx, connectionsKey, connectionID).Err()
}

func (r *RedisConnectionRegistry) Remove(ctx context.Context, connectionID string) error {
	return r.rdb.SRem(ctx, connectionsKey, connectionID).Err()
}

// ListAll returns a point-in-time snapshot of the id set. The snapshot may
// be stale by the time a broadcast finishes with it; sends to half-gone
// connections come back Gone and prune themselves.
func (r *RedisConnectionRegistry) ListAll(ctx context.Context) ([]string, error) {
	return r.rdb.SMembers(ctx, connectionsKey).Result()
}
