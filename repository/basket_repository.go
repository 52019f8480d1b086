package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oakframe-configurator/db"
	"oakframe-configurator/models"
)

// BasketRepository handles database operations for basket lines
type BasketRepository struct{}

// NewBasketRepository creates a new BasketRepository
func NewBasketRepository() *BasketRepository {
	return &BasketRepository{}
}

// Ensure BasketRepository implements BasketRepositoryInterface
var _ BasketRepositoryInterface = (*BasketRepository)(nil)

const basketColumns = `id, user_id, product_id, quantity, price, configuration, config_hash,
	COALESCE(category, ''), name, COALESCE(image, ''), created_at, updated_at`

// AddOrMerge inserts a basket line or adds to the quantity of the equivalent one
func (r *BasketRepository) AddOrMerge(ctx context.Context, item *models.BasketItem) (string, bool, error) {
	zap.S().Debugf("📦 AddOrMerge: user=%s, product=%s, hash=%s, quantity=%d",
		item.UserID, item.ProductID, item.ConfigHash, item.Quantity)

	config, err := encodeConfig(item.Configuration)
	if err != nil {
		return "", false, err
	}

	// If the line exists only the quantity and updated_at move, the price snapshot stays
	query := `
		INSERT INTO basket (id, user_id, product_id, quantity, price, configuration, config_hash,
		                    category, name, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''), NOW(), NOW())
		ON CONFLICT (user_id, product_id, config_hash)
		DO UPDATE SET
			quantity = basket.quantity + EXCLUDED.quantity,
			updated_at = NOW()
		WHERE basket.quantity + EXCLUDED.quantity <= $11
		RETURNING id, (xmax = 0) AS inserted
	`

	var configArg any
	if config != nil {
		configArg = string(config)
	}

	var id string
	var inserted bool
	err = db.DB.QueryRowContext(ctx, query,
		uuid.NewString(), item.UserID, item.ProductID, item.Quantity, item.Price, configArg,
		item.ConfigHash, string(item.Category), item.Name, item.Image, models.MaxQuantity,
	).Scan(&id, &inserted)
	// the guarded update returns no row when the merged quantity would exceed the cap
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, models.QuantityExceeded(item.Quantity)
	}
	if err != nil {
		zap.S().Errorf("❌ AddOrMerge: %v", err)
		return "", false, storeErr("upsert basket item", err)
	}
	return id, !inserted, nil
}

// GetByID retrieves a basket line
func (r *BasketRepository) GetByID(ctx context.Context, id string) (*models.BasketItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, notFound("basket item", id)
	}

	row := db.DB.QueryRowContext(ctx, `SELECT `+basketColumns+` FROM basket WHERE id = $1`, id)
	item, err := scanBasketItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("basket item", id)
		}
		return nil, storeErr("get basket item", err)
	}
	return item, nil
}

// UpdateQuantity overwrites the quantity of a line
func (r *BasketRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound("basket item", id)
	}

	result, err := db.DB.ExecContext(ctx,
		`UPDATE basket SET quantity = $2, updated_at = NOW() WHERE id = $1`, id, quantity)
	if err != nil {
		zap.S().Errorf("❌ UpdateQuantity: %v", err)
		return storeErr("update basket quantity", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("get rows affected", err)
	}
	if affected == 0 {
		return notFound("basket item", id)
	}
	return nil
}

// Delete removes a line; removing a missing line succeeds
func (r *BasketRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := db.DB.ExecContext(ctx, `DELETE FROM basket WHERE id = $1`, id); err != nil {
		zap.S().Errorf("❌ Delete basket item %s: %v", id, err)
		return storeErr("delete basket item", err)
	}
	return nil
}

// ListByUser retrieves every line of a user, newest first
func (r *BasketRepository) ListByUser(ctx context.Context, userID string) ([]models.BasketItem, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT `+basketColumns+` FROM basket WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		zap.S().Errorf("❌ ListByUser: %v", err)
		return nil, storeErr("query basket", err)
	}
	defer rows.Close()

	items := []models.BasketItem{}
	for rows.Next() {
		item, err := scanBasketItem(rows)
		if err != nil {
			return nil, storeErr("scan basket item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate basket", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBasketItem(row rowScanner) (*models.BasketItem, error) {
	var item models.BasketItem
	var config []byte
	var category string
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.Price,
		&config,
		&item.ConfigHash,
		&category,
		&item.Name,
		&item.Image,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Category = models.ProductCategory(category)
	if item.Configuration, err = decodeConfig(config); err != nil {
		return nil, err
	}
	return &item, nil
}
