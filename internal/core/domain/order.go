package domain

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusRefunded       OrderStatus = "REFUNDED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing:     {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:        {OrderStatusDelivered, OrderStatusRefunded},
	OrderStatusDelivered:      {OrderStatusCompleted, OrderStatusRefunded},
	OrderStatusCompleted:      {OrderStatusRefunded},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPaid, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusConfirming PaymentStatus = "CONFIRMING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusConfirming, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusExpired, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethodBalance pays an order from the buyer's (or buyer's shop) balance.
const PaymentMethodBalance = "balance"

// TaxRate is applied to the subtotal of every order.
var TaxRate = decimal.RequireFromString("0.10")

// Order is a purchase placed through checkout.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	UserID         uuid.UUID       `json:"userId"`
	ShopID         *uuid.UUID      `json:"shopId"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Shipping       decimal.Decimal `json:"shipping"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Status         OrderStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	PaymentMethod  string          `json:"paymentMethod"`
	CryptoCurrency *string         `json:"cryptoCurrency"`
	Notes          string          `json:"notes"` // JSON: shipping address + payment metadata
	TrackingNumber *string         `json:"trackingNumber"`
	PaidAt         *time.Time      `json:"paidAt"`
	ShippedAt      *time.Time      `json:"shippedAt"`
	DeliveredAt    *time.Time      `json:"deliveredAt"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Items          []OrderItem     `json:"items,omitempty"`
}

// PaidByBalance reports whether the order was settled from a ledger balance at checkout.
func (o *Order) PaidByBalance() bool {
	return o.PaymentMethod == PaymentMethodBalance
}

// OrderItem is an immutable line of an order with product data denormalised at order time.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     *string         `json:"image"`
}

// LineItem is a cart line as submitted at checkout.
type LineItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// Totals holds the computed money fields of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums price×quantity, applies flat free shipping and a 10% tax.
// Amounts stay exact; nothing is rounded to cents.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	shipping := decimal.Zero
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

const orderSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderNumber returns "ORD-<unix millis>-<6 random characters from A-Z0-9>".
// Collisions are treated as negligible; the unique constraint on order_number rejects them.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderSuffixAlphabet[rand.IntN(len(orderSuffixAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// ShippingAddress is stored inside Order.Notes.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

// PaymentNote is the payment metadata stored inside Order.Notes.
type PaymentNote struct {
	Method             string  `json:"method"`
	CryptoCurrency     *string `json:"cryptoCurrency,omitempty"`
	PayWithShopBalance bool    `json:"payWithShopBalance"`
}

// OrderNotes is the JSON document kept in Order.Notes.
type OrderNotes struct {
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Payment         PaymentNote      `json:"payment"`
}

func (n OrderNotes) Encode() string {
	b, err := json.Marshal(n)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// CheckoutIdempotencyKey scopes a client-supplied Idempotency-Key to the buyer.
func CheckoutIdempotencyKey(userID uuid.UUID, clientKey string) string {
	return userID.String() + ":checkout:" + clientKey
}

// CheckoutKey durably binds a scoped Idempotency-Key to the order it produced.
type CheckoutKey struct {
	Key       string
	UserID    uuid.UUID
	OrderID   uuid.UUID
	CreatedAt time.Time
}
