package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is the authority level carried by a verified session.
type Role string

const (
	RoleUser    Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
)

// IsStaff reports whether the role may review requests. ADMIN and MANAGER are equivalent.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}

// User is a storefront account with its own wallet balance.
type User struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      Role            `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// Shop is a seller storefront owned by exactly one user, with a balance separate from the owner's.
type Shop struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// ScopeKind tags which account type owns a balance.
type ScopeKind string

const (
	ScopeUser ScopeKind = "USER"
	ScopeShop ScopeKind = "SHOP"
)

// AccountScope identifies the balance a workflow reads or mutates.
// It is resolved once per request and then threaded through validation, debit and listing.
type AccountScope struct {
	Kind ScopeKind
	ID   uuid.UUID
}

func UserScope(id uuid.UUID) AccountScope { return AccountScope{Kind: ScopeUser, ID: id} }

func ShopScope(id uuid.UUID) AccountScope { return AccountScope{Kind: ScopeShop, ID: id} }

func (s AccountScope) IsShop() bool { return s.Kind == ScopeShop }

// ShopID returns the shop id for shop scopes and nil for user scopes.
func (s AccountScope) ShopID() *uuid.UUID {
	if !s.IsShop() {
		return nil
	}
	id := s.ID
	return &id
}

func (s AccountScope) String() string {
	return string(s.Kind) + ":" + s.ID.String()
}

// ScopeFor builds the scope that owns a request: the shop when shopID is set, the user otherwise.
func ScopeFor(userID uuid.UUID, shopID *uuid.UUID) AccountScope {
	if shopID != nil {
		return ShopScope(*shopID)
	}
	return UserScope(userID)
}

// Ledger sentinels returned by storage adapters.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrScopeNotFound       = errors.New("balance scope not found")
	ErrAlreadyReviewed     = errors.New("request already reviewed")
	ErrStaleOrder          = errors.New("order payment status changed concurrently")
	ErrDuplicateCheckout   = errors.New("idempotency key already used for another checkout")
)
