package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var errMalformedEvent = errors.New("malformed event")

// DispatcherConfig tunes the event workers.
type DispatcherConfig struct {
	Concurrency  int
	BlockTimeout time.Duration
	MaxAttempts  int
}

// EventDispatcher is the consumer side of the outbox.
type EventDispatcher struct {
	queue         ports.EventQueue
	notifications ports.NotificationRepository
	accounts      ports.AccountRepository
	catalog       ports.CatalogService
	cfg           DispatcherConfig
	log           zerolog.Logger
}

func NewEventDispatcher(
	queue ports.EventQueue,
	notifications ports.NotificationRepository,
	accounts ports.AccountRepository,
	catalog ports.CatalogService,
	cfg DispatcherConfig,
	log zerolog.Logger,
) *EventDispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &EventDispatcher{
		queue:         queue,
		notifications: notifications,
		accounts:      accounts,
		catalog:       catalog,
		cfg:           cfg,
		log:           log,
	}
}

// Run starts the workers and blocks until ctx is cancelled and every worker has returned.
func (d *EventDispatcher) Run(ctx context.Context) {
	d.log.Info().Int("workers", d.cfg.Concurrency).Msg("event dispatcher started")

	var wg sync.WaitGroup
	for i := 0; i < d.cfg.Concurrency; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			d.work(ctx, worker)
		}(i)
	}
	wg.Wait()

	d.log.Info().Msg("event dispatcher stopped")
}

func (d *EventDispatcher) work(ctx context.Context, worker int) {
	log := d.log.With().Int("worker", worker).Logger()
	for ctx.Err() == nil {
		evt, err := d.queue.Dequeue(ctx, d.cfg.BlockTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Msg("dequeue failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(d.cfg.BlockTimeout):
			}
			continue
		}
		if evt == nil {
			continue
		}
		d.process(context.WithoutCancel(ctx), *evt, log)
	}
}

// process handles one event and re-enqueues it on failure until MaxAttempts is reached.
func (d *EventDispatcher) process(ctx context.Context, evt domain.Event, log zerolog.Logger) {
	err := d.Handle(ctx, evt)
	if err == nil {
		return
	}

	evt.Attempt++
	entry := log.With().
		Str("event_id", evt.ID.String()).
		Str("kind", string(evt.Kind)).
		Int("attempt", evt.Attempt).
		Logger()

	if errors.Is(err, errMalformedEvent) || evt.Attempt >= d.cfg.MaxAttempts {
		entry.Error().Err(err).Msg("dropping event")
		return
	}
	if qErr := d.queue.Enqueue(ctx, evt); qErr != nil {
		entry.Error().Err(qErr).AnErr("cause", err).Msg("failed to re-enqueue event, dropping")
		return
	}
	entry.Warn().Err(err).Msg("event failed, re-enqueued")
}

// Handle applies one event. Notification rows get ids derived from the event id so a
// retried event does not deliver the same notice twice.
func (d *EventDispatcher) Handle(ctx context.Context, evt domain.Event) error {
	switch evt.Kind {
	case domain.EventNotifyUser:
		if evt.UserID == nil || evt.Notice == nil {
			return fmt.Errorf("%w: %s without user or notice", errMalformedEvent, evt.Kind)
		}
		return d.deliver(ctx, evt, *evt.UserID)

	case domain.EventNotifyStaff:
		if evt.Notice == nil {
			return fmt.Errorf("%w: %s without notice", errMalformedEvent, evt.Kind)
		}
		staff, err := d.accounts.ListStaffIDs(ctx)
		if err != nil {
			return fmt.Errorf("list staff: %w", err)
		}
		for _, id := range staff {
			if err := d.deliver(ctx, evt, id); err != nil {
				return err
			}
		}
		return nil

	case domain.EventCloneProducts:
		if evt.Clone == nil {
			return fmt.Errorf("%w: %s without task", errMalformedEvent, evt.Kind)
		}
		n, err := d.catalog.CloneIntoBuyerShop(ctx, *evt.Clone)
		if err != nil {
			return fmt.Errorf("clone products: %w", err)
		}
		d.log.Info().
			Str("order_id", evt.Clone.OrderID.String()).
			Int("cloned", n).
			Msg("catalog clone finished")
		return nil
	}
	return fmt.Errorf("%w: unknown kind %q", errMalformedEvent, evt.Kind)
}

func (d *EventDispatcher) deliver(ctx context.Context, evt domain.Event, userID uuid.UUID) error {
	n := &domain.Notification{
		ID:        uuid.NewSHA1(evt.ID, userID[:]),
		UserID:    userID,
		Title:     evt.Notice.Title,
		Message:   evt.Notice.Message,
		Type:      evt.Notice.Type,
		Link:      evt.Notice.Link,
		CreatedAt: evt.CreatedAt,
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if err := d.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("persist notification for %s: %w", userID, err)
	}
	return nil
}
