package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
)

// ErrQueueFull is returned when the in-process event buffer has no room left.
var ErrQueueFull = errors.New("memory: event queue is full")

// EventQueue implements ports.EventQueue with a buffered channel.
type EventQueue struct {
	ch chan domain.Event
}

func NewEventQueue(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1024
	}
	return &EventQueue{ch: make(chan domain.Event, capacity)}
}

// Enqueue never blocks.
func (q *EventQueue) Enqueue(ctx context.Context, evt domain.Event) error {
	select {
	case q.ch <- evt:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (*domain.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case evt := <-q.ch:
		return &evt, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len reports the number of buffered events.
func (q *EventQueue) Len() int { return len(q.ch) }

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// IdempotencyCache implements ports.IdempotencyCache with a TTL map.
type IdempotencyCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewIdempotencyCache() *IdempotencyCache {
	return &IdempotencyCache{entries: make(map[string]cacheEntry), now: time.Now}
}

func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	return e.value, nil
}

// Set keeps the first unexpired value stored for key.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && !c.now().After(e.expiresAt) {
		return nil
	}
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

// RateLimitStore implements ports.RateLimitStore with per-process fixed windows.
type RateLimitStore struct {
	mu      sync.Mutex
	windows map[string]int64
	now     func() time.Time
}

func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]int64), now: time.Now}
}

func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	windowSecs := int64(window.Seconds())
	if windowSecs < 1 {
		windowSecs = 1
	}
	windowID := s.now().Unix() / windowSecs
	bucket := fmt.Sprintf("%s:%d", key, windowID)

	s.mu.Lock()
	for k := range s.windows {
		if k != bucket && strings.HasPrefix(k, key+":") {
			delete(s.windows, k)
		}
	}
	s.windows[bucket]++
	count := s.windows[bucket]
	s.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * windowSecs,
	}, nil
}
