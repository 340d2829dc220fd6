package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultEventQueueKey is the list holding pending outbox events.
const DefaultEventQueueKey = "events:outbox"

// EventQueue implements ports.EventQueue on a Redis list: LPUSH to enqueue, BRPOP to consume.
type EventQueue struct {
	client *goredis.Client
	key    string
}

func NewEventQueue(client *goredis.Client, key string) *EventQueue {
	if key == "" {
		key = DefaultEventQueueKey
	}
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, evt domain.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("redis enqueue event: %w", err)
	}
	return nil
}

// Dequeue blocks for up to timeout. Redis rounds sub-second timeouts up to one second.
func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (*domain.Event, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis dequeue event: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("redis dequeue event: unexpected reply of %d elements", len(res))
	}

	var evt domain.Event
	if err := json.Unmarshal([]byte(res[1]), &evt); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return &evt, nil
}

// Len reports the number of pending events.
func (q *EventQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
