package dto

import (
	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositRequest is the body of POST /api/v1/deposits.
type DepositRequest struct {
	Currency string          `json:"currency" binding:"required,max=20"`
	Network  *string         `json:"network,omitempty" binding:"omitempty,max=50"`
	Amount   decimal.Decimal `json:"amount"`
	ShopID   *uuid.UUID      `json:"shopId,omitempty"`
	ProofURL *string         `json:"proofUrl,omitempty" binding:"omitempty,max=500,safe_url" sanitize:"trim"`
}

// WithdrawalRequest is the body of POST /api/v1/withdrawals.
type WithdrawalRequest struct {
	Currency string          `json:"currency" binding:"required,max=20"`
	Network  *string         `json:"network,omitempty" binding:"omitempty,max=50"`
	Address  string          `json:"address" binding:"required,max=200"`
	Amount   decimal.Decimal `json:"amount"`
	ShopID   *uuid.UUID      `json:"shopId,omitempty"`
	ProofURL *string         `json:"proofUrl,omitempty" binding:"omitempty,max=500,safe_url" sanitize:"trim"`
}

// ReviewRequest is the body of PATCH /api/v1/admin/{deposits,withdrawals}/:id.
type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// CheckoutItem is one cart line.
type CheckoutItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ShippingAddress is the delivery address captured at checkout.
type ShippingAddress struct {
	FullName   string `json:"fullName" binding:"required,max=100"`
	Phone      string `json:"phone,omitempty" binding:"max=30"`
	Line1      string `json:"line1" binding:"required,max=200"`
	Line2      string `json:"line2,omitempty" binding:"max=200"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state,omitempty" binding:"max=100"`
	PostalCode string `json:"postalCode,omitempty" binding:"max=20"`
	Country    string `json:"country" binding:"required,max=56"`
}

// CheckoutRequest is the body of POST /api/v1/orders.
// An empty items list is reported by the order service, not by binding.
type CheckoutRequest struct {
	Items              []CheckoutItem   `json:"items"`
	PaymentMethod      string           `json:"paymentMethod" binding:"required,max=30"`
	CryptoCurrency     *string          `json:"cryptoCurrency,omitempty" binding:"omitempty,max=20"`
	PayWithShopBalance bool             `json:"payWithShopBalance"`
	AddToStore         bool             `json:"addToStore"`
	ShippingAddress    *ShippingAddress `json:"shippingAddress,omitempty"`
}

// LineItems converts the cart to domain line items.
func (r CheckoutRequest) LineItems() []domain.LineItem {
	items := make([]domain.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.LineItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	return items
}

// Address converts the shipping address, if any.
func (r CheckoutRequest) Address() *domain.ShippingAddress {
	if r.ShippingAddress == nil {
		return nil
	}
	a := domain.ShippingAddress(*r.ShippingAddress)
	return &a
}

// OrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type OrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	TrackingNumber *string `json:"trackingNumber,omitempty" binding:"omitempty,max=100,safe_id"`
}

// PaymentStatusRequest is the body of PATCH /api/v1/admin/orders/:id/payment-status.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// BalanceResponse is the response of GET /api/v1/wallet/balance.
type BalanceResponse struct {
	Scope   string          `json:"scope"`
	ShopID  *uuid.UUID      `json:"shopId,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// ListResponse wraps a paginated listing.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// NewListResponse computes total_pages for a page of results.
func NewListResponse(items interface{}, total int64, page, pageSize int) ListResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return ListResponse{Items: items, Total: total, Page: page, PageSize: pageSize, TotalPages: totalPages}
}
