package memory

import (
	"context"
	"sort"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	store *Store
}

func NewNotificationRepo(s *Store) *NotificationRepo {
	return &NotificationRepo{store: s}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.notifications {
		if r.store.notifications[i].ID == n.ID {
			return nil
		}
	}
	r.store.notifications = append(r.store.notifications, *n)
	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []domain.Notification{}
	for _, n := range r.store.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

func NewAuditRepo(s *Store) *AuditRepo {
	return &AuditRepo{store: s}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audits = append(r.store.audits, *log)
	return nil
}

// Entries returns a snapshot of the audit trail.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.AuditLog(nil), r.store.audits...)
}
