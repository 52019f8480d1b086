package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"oakframe-configurator/db"
	"oakframe-configurator/models"
)

// ProductRepository handles database operations for catalog products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// GetByID retrieves a product by id
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, price, category, is_active, images
		FROM products
		WHERE id = $1
	`

	var product models.Product
	var category string
	var images []byte
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&category,
		&product.IsActive,
		&images,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("product", id)
		}
		zap.S().Errorf("❌ GetByID product %s: %v", id, err)
		return nil, storeErr("get product", err)
	}
	product.Category = models.ProductCategory(category)
	if len(images) > 0 {
		if err := json.Unmarshal(images, &product.Images); err != nil {
			return nil, storeErr("decode product images", err)
		}
	}
	return &product, nil
}

// Upsert creates or replaces a catalog product
func (r *ProductRepository) Upsert(ctx context.Context, product *models.Product) error {
	images := product.Images
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, name, price, category, is_active, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			is_active = EXCLUDED.is_active,
			images = EXCLUDED.images,
			updated_at = NOW()
	`
	if _, err := db.DB.ExecContext(ctx, query, product.ID, product.Name, product.Price,
		string(product.Category), product.IsActive, string(raw)); err != nil {
		zap.S().Errorf("❌ Upsert product %s: %v", product.ID, err)
		return storeErr("upsert product", err)
	}
	return nil
}
