package handler

import (
	"strings"

	"storefront-ledger/internal/adapter/http/dto"
	"storefront-ledger/internal/adapter/http/middleware"
	"storefront-ledger/internal/core/domain"
	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey lets clients retry checkout without placing a second order.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// OrderHandler serves checkout and order endpoints.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout handles POST /api/v1/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLen {
		response.Error(c, apperror.Validation("Idempotency-Key is too long"))
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), ports.PlaceOrderInput{
		UserID:             actor.UserID,
		Items:              req.LineItems(),
		PaymentMethod:      req.PaymentMethod,
		CryptoCurrency:     req.CryptoCurrency,
		PayWithShopBalance: req.PayWithShopBalance,
		AddToStore:         req.AddToStore,
		ShippingAddress:    req.Address(),
		IdempotencyKey:     key,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, order.ID.String())
	response.Created(c, order)
}

// ListMine handles GET /api/v1/orders.
func (h *OrderHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	orders, total, err := h.orders.ListMine(c.Request.Context(), actor, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(orders, total, page, pageSize))
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status (staff or the selling shop's owner).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), actor, ports.UpdateOrderStatusInput{
		OrderID:        id,
		Status:         domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status))),
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// UpdatePaymentStatus handles PATCH /api/v1/admin/orders/:id/payment-status.
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status := domain.PaymentStatus(strings.ToUpper(strings.TrimSpace(req.PaymentStatus)))
	order, err := h.orders.UpdatePaymentStatus(c.Request.Context(), actor, id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}
