package service

import (
	"context"
	"fmt"

	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// NotificationServiceImpl is the producer side of the outbox. Callers have already
// committed their own transaction, so enqueue failures are logged and swallowed.
type NotificationServiceImpl struct {
	queue         ports.EventQueue
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

func NewNotificationService(queue ports.EventQueue, notifications ports.NotificationRepository, log zerolog.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{queue: queue, notifications: notifications, log: log}
}

func (s *NotificationServiceImpl) NotifyUser(ctx context.Context, userID uuid.UUID, notice domain.Notice) {
	s.enqueue(ctx, domain.NewUserNotification(userID, notice))
}

func (s *NotificationServiceImpl) NotifyStaff(ctx context.Context, notice domain.Notice) {
	s.enqueue(ctx, domain.NewStaffNotification(notice))
}

func (s *NotificationServiceImpl) ScheduleCatalogClone(ctx context.Context, task domain.CloneTask) {
	s.enqueue(ctx, domain.NewCloneEvent(task))
}

func (s *NotificationServiceImpl) enqueue(ctx context.Context, evt domain.Event) {
	if err := s.queue.Enqueue(context.WithoutCancel(ctx), evt); err != nil {
		s.log.Error().Err(err).
			Str("event_id", evt.ID.String()).
			Str("kind", string(evt.Kind)).
			Msg("failed to enqueue event")
		return
	}
	s.log.Debug().
		Str("event_id", evt.ID.String()).
		Str("kind", string(evt.Kind)).
		Msg("event enqueued")
}

// List returns the newest notifications of a user.
func (s *NotificationServiceImpl) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	items, err := s.notifications.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list notifications: %w", err))
	}
	return items, nil
}
