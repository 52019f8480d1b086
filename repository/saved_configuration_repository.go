package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oakframe-configurator/db"
	"oakframe-configurator/models"
)

// SavedConfigurationRepository handles database operations for saved configurations
type SavedConfigurationRepository struct{}

// NewSavedConfigurationRepository creates a new SavedConfigurationRepository
func NewSavedConfigurationRepository() *SavedConfigurationRepository {
	return &SavedConfigurationRepository{}
}

// Ensure SavedConfigurationRepository implements SavedConfigurationRepositoryInterface
var _ SavedConfigurationRepositoryInterface = (*SavedConfigurationRepository)(nil)

const savedConfigurationColumns = `id, user_id, category, config, price, name, created_at, updated_at`

// Insert stores a new saved configuration and fills in its id and timestamps
func (r *SavedConfigurationRepository) Insert(ctx context.Context, cfg *models.SavedConfiguration) error {
	raw, err := json.Marshal(cfg.Config)
	if err != nil {
		return err
	}

	cfg.ID = uuid.NewString()
	query := `
		INSERT INTO saved_configurations (id, user_id, category, config, price, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = db.DB.QueryRowContext(ctx, query, cfg.ID, cfg.UserID, string(cfg.Category), string(raw), cfg.Price, cfg.Name).
		Scan(&cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		zap.S().Errorf("❌ Insert saved configuration: %v", err)
		return storeErr("insert saved configuration", err)
	}
	return nil
}

// GetByID retrieves a saved configuration
func (r *SavedConfigurationRepository) GetByID(ctx context.Context, id string) (*models.SavedConfiguration, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, notFound("saved configuration", id)
	}

	row := db.DB.QueryRowContext(ctx, `SELECT `+savedConfigurationColumns+` FROM saved_configurations WHERE id = $1`, id)
	cfg, err := scanSavedConfiguration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("saved configuration", id)
		}
		return nil, storeErr("get saved configuration", err)
	}
	return cfg, nil
}

// ListByUser retrieves the saved configurations of a user, newest first
func (r *SavedConfigurationRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedConfiguration, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT `+savedConfigurationColumns+` FROM saved_configurations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, storeErr("query saved configurations", err)
	}
	defer rows.Close()

	configs := []models.SavedConfiguration{}
	for rows.Next() {
		cfg, err := scanSavedConfiguration(rows)
		if err != nil {
			return nil, storeErr("scan saved configuration", err)
		}
		configs = append(configs, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate saved configurations", err)
	}
	return configs, nil
}

// Delete removes a saved configuration; removing a missing one succeeds
func (r *SavedConfigurationRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := db.DB.ExecContext(ctx, `DELETE FROM saved_configurations WHERE id = $1`, id); err != nil {
		return storeErr("delete saved configuration", err)
	}
	return nil
}

func scanSavedConfiguration(row rowScanner) (*models.SavedConfiguration, error) {
	var cfg models.SavedConfiguration
	var category string
	var raw []byte
	var createdAt, updatedAt time.Time
	if err := row.Scan(&cfg.ID, &cfg.UserID, &category, &raw, &cfg.Price, &cfg.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	cfg.Category = models.ProductCategory(category)
	cfg.CreatedAt = createdAt
	cfg.UpdatedAt = updatedAt
	state, err := decodeConfig(raw)
	if err != nil {
		return nil, err
	}
	cfg.Config = state
	return &cfg, nil
}
