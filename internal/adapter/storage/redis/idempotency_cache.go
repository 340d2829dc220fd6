package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// replayKeyPrefix namespaces stored checkout results.
const replayKeyPrefix = "checkout:replay:"

// IdempotencyCache remembers the order produced for an Idempotency-Key.
// The first stored result wins; later writes for the same key are ignored so a
// racing duplicate cannot replace the order the client already saw.
type IdempotencyCache struct {
	client goredis.UniversalClient
}

func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, replayKeyPrefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return raw, nil
}

func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := c.client.SetNX(ctx, replayKeyPrefix+key, value, ttl).Result(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
