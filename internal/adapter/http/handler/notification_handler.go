package handler

import (
	"strconv"

	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler lists the caller's notifications.
type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /api/v1/notifications[?limit=N].
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.notifications.List(c.Request.Context(), actor.UserID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}
