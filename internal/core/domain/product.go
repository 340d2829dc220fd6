package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. ShopID nil marks a platform product that buyers may clone into their shop.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      *uuid.UUID      `json:"shopId"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Images      []ProductImage  `json:"images,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"isPrimary"`
	SortOrder int       `json:"sortOrder"`
}

// IsPlatform reports whether the product belongs to no shop.
func (p Product) IsPlatform() bool {
	return p.ShopID == nil
}

// PrimaryImage returns the URL flagged primary, falling back to the first image.
func (p Product) PrimaryImage() *string {
	if len(p.Images) == 0 {
		return nil
	}
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			u := p.Images[i].URL
			return &u
		}
	}
	u := p.Images[0].URL
	return &u
}
