package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification for the client UI.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationOrder   NotificationType = "order"
)

// Notice is the payload handed to the notification sink.
type Notice struct {
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Link    string           `json:"link,omitempty"`
}

// Notification is a persisted notice addressed to one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// EventKind names a post-commit side effect processed by the dispatcher.
type EventKind string

const (
	EventNotifyUser    EventKind = "NOTIFY_USER"
	EventNotifyStaff   EventKind = "NOTIFY_STAFF"
	EventCloneProducts EventKind = "CLONE_PRODUCTS"
)

// CloneTask asks for platform products of an order to be copied into the buyer's shop.
type CloneTask struct {
	BuyerID    uuid.UUID   `json:"buyerId"`
	OrderID    uuid.UUID   `json:"orderId"`
	ProductIDs []uuid.UUID `json:"productIds"`
}

// Event is an outbox entry. Producers enqueue it after their transaction commits.
type Event struct {
	ID        uuid.UUID  `json:"id"`
	Kind      EventKind  `json:"kind"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	Notice    *Notice    `json:"notice,omitempty"`
	Clone     *CloneTask `json:"clone,omitempty"`
	Attempt   int        `json:"attempt"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewUserNotification(userID uuid.UUID, n Notice) Event {
	return Event{ID: uuid.New(), Kind: EventNotifyUser, UserID: &userID, Notice: &n, CreatedAt: time.Now().UTC()}
}

func NewStaffNotification(n Notice) Event {
	return Event{ID: uuid.New(), Kind: EventNotifyStaff, Notice: &n, CreatedAt: time.Now().UTC()}
}

func NewCloneEvent(task CloneTask) Event {
	return Event{ID: uuid.New(), Kind: EventCloneProducts, Clone: &task, CreatedAt: time.Now().UTC()}
}
