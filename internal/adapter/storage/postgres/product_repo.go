package postgres

import (
	"context"
	"fmt"
	"time"

	"storefront-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// ProductRepo implements ports.ProductRepository.
type ProductRepo struct {
	pool Pool
}

func NewProductRepo(pool Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// GetByIDs loads the products with their images. Unknown ids are simply absent from the result.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, shop_id, name, slug, sku, description, price, stock, created_at
		FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Name, &p.Slug, &p.SKU, &p.Description, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	if len(products) == 0 {
		return products, nil
	}

	imgRows, err := r.pool.Query(ctx,
		`SELECT id, product_id, url, is_primary, sort_order FROM product_images
		WHERE product_id = ANY($1) ORDER BY sort_order`, ids)
	if err != nil {
		return nil, fmt.Errorf("get product images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img domain.ProductImage
		if err := imgRows.Scan(&img.ID, &img.ProductID, &img.URL, &img.IsPrimary, &img.SortOrder); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product images: %w", err)
	}
	return products, nil
}

// Clone copies src and its images into shopID under a new slug and sku.
func (r *ProductRepo) Clone(ctx context.Context, src *domain.Product, shopID uuid.UUID, slug, sku string) (*domain.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin clone: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	clone := &domain.Product{
		ID:          uuid.New(),
		ShopID:      &shopID,
		Name:        src.Name,
		Slug:        slug,
		SKU:         sku,
		Description: src.Description,
		Price:       src.Price,
		Stock:       src.Stock,
		CreatedAt:   time.Now().UTC(),
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO products (id, shop_id, name, slug, sku, description, price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		clone.ID, clone.ShopID, clone.Name, clone.Slug, clone.SKU,
		clone.Description, clone.Price, clone.Stock, clone.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert cloned product: %w", err)
	}

	for _, img := range src.Images {
		copied := domain.ProductImage{
			ID:        uuid.New(),
			ProductID: clone.ID,
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO product_images (id, product_id, url, is_primary, sort_order) VALUES ($1, $2, $3, $4, $5)`,
			copied.ID, copied.ProductID, copied.URL, copied.IsPrimary, copied.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("insert cloned image: %w", err)
		}
		clone.Images = append(clone.Images, copied)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit clone: %w", err)
	}
	return clone, nil
}
