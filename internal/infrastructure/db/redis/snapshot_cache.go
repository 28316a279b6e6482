package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	snapshotKey = "assistant:snapshot"
	snapshotTTL = 30 * time.Second
)

// SnapshotCache keeps the rendered statistics snapshot for a short TTL so a
// burst of chat requests does not re-aggregate the whole dataset each time.
// Cache errors are logged and treated as misses; the assistant must answer
// with or without Redis.
type SnapshotCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewSnapshotCache(client *redis.Client, log zerolog.Logger) *SnapshotCache {
	return &SnapshotCache{client: client, log: log}
}

func (c *SnapshotCache) Get(ctx context.Context) (string, bool) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("snapshot cache read failed")
		}
		return "", false
	}
	return val, true
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot string) {
	if err := c.client.Set(ctx, snapshotKey, snapshot, snapshotTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("snapshot cache write failed")
	}
}
