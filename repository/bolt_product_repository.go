package repository

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"oakframe-configurator/models"
)

// BoltProductRepository stores catalog products in the products bucket
type BoltProductRepository struct {
	store *BoltStore
}

// NewBoltProductRepository creates a new BoltProductRepository
func NewBoltProductRepository(store *BoltStore) *BoltProductRepository {
	return &BoltProductRepository{store: store}
}

// Ensure BoltProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*BoltProductRepository)(nil)

// GetByID retrieves a product by id
func (r *BoltProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product *models.Product
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(productsBucket).Get([]byte(id))
		if raw == nil {
			return nil
		}
		product = &models.Product{}
		return json.Unmarshal(raw, product)
	})
	if err != nil {
		return nil, storeErr("get product", err)
	}
	if product == nil {
		return nil, notFound("product", id)
	}
	return product, nil
}

// Upsert creates or replaces a catalog product
func (r *BoltProductRepository) Upsert(ctx context.Context, product *models.Product) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(productsBucket), []byte(product.ID), product)
	})
	if err != nil {
		return storeErr("upsert product", err)
	}
	return nil
}
