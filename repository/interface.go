package repository

import (
	"context"

	"oakframe-configurator/models"
)

// ProductRepositoryInterface defines the contract for catalog lookups
type ProductRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Upsert(ctx context.Context, product *models.Product) error
}

// BasketRepositoryInterface defines the contract for basket line persistence
// AddOrMerge is atomic: a line with the same user, product and config hash gets its
// quantity incremented and keeps its price snapshot, otherwise the item is inserted.
type BasketRepositoryInterface interface {
	AddOrMerge(ctx context.Context, item *models.BasketItem) (id string, merged bool, err error)
	GetByID(ctx context.Context, id string) (*models.BasketItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.BasketItem, error)
}

// SavedConfigurationRepositoryInterface defines the contract for saved configurator snapshots
type SavedConfigurationRepositoryInterface interface {
	Insert(ctx context.Context, cfg *models.SavedConfiguration) error
	GetByID(ctx context.Context, id string) (*models.SavedConfiguration, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedConfiguration, error)
	Delete(ctx context.Context, id string) error
}
