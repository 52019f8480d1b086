package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"oakframe-configurator/models"
)

// BoltSavedConfigurationRepository stores saved configurations with a per-user index
type BoltSavedConfigurationRepository struct {
	store *BoltStore
	now   func() time.Time
}

// NewBoltSavedConfigurationRepository creates a new BoltSavedConfigurationRepository
func NewBoltSavedConfigurationRepository(store *BoltStore) *BoltSavedConfigurationRepository {
	return &BoltSavedConfigurationRepository{store: store, now: time.Now}
}

// Ensure BoltSavedConfigurationRepository implements SavedConfigurationRepositoryInterface
var _ SavedConfigurationRepositoryInterface = (*BoltSavedConfigurationRepository)(nil)

// Insert stores a new saved configuration and fills in its id and timestamps
func (r *BoltSavedConfigurationRepository) Insert(ctx context.Context, cfg *models.SavedConfiguration) error {
	cfg.ID = uuid.NewString()
	cfg.CreatedAt = r.now().UTC()
	cfg.UpdatedAt = cfg.CreatedAt

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		if err := putJSON(tx.Bucket(savedConfigurationsBucket), []byte(cfg.ID), cfg); err != nil {
			return err
		}
		return tx.Bucket(savedConfigurationsByUser).Put(joinKey(cfg.UserID, cfg.ID), []byte(cfg.ID))
	})
	if err != nil {
		return storeErr("insert saved configuration", err)
	}
	return nil
}

// GetByID retrieves a saved configuration
func (r *BoltSavedConfigurationRepository) GetByID(ctx context.Context, id string) (*models.SavedConfiguration, error) {
	var cfg *models.SavedConfiguration
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(savedConfigurationsBucket).Get([]byte(id))
		if raw == nil {
			return nil
		}
		cfg = &models.SavedConfiguration{}
		return json.Unmarshal(raw, cfg)
	})
	if err != nil {
		return nil, storeErr("get saved configuration", err)
	}
	if cfg == nil {
		return nil, notFound("saved configuration", id)
	}
	return cfg, nil
}

// ListByUser retrieves the saved configurations of a user, newest first
func (r *BoltSavedConfigurationRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedConfiguration, error) {
	configs := []models.SavedConfiguration{}
	err := r.store.db.View(func(tx *bolt.Tx) error {
		all := tx.Bucket(savedConfigurationsBucket)
		prefix := append(joinKey(userID), keySep...)
		for _, id := range prefixValues(tx.Bucket(savedConfigurationsByUser), prefix) {
			raw := all.Get(id)
			if raw == nil {
				continue
			}
			var cfg models.SavedConfiguration
			if err := json.Unmarshal(raw, &cfg); err != nil {
				return err
			}
			configs = append(configs, cfg)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr("query saved configurations", err)
	}
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].CreatedAt.After(configs[j].CreatedAt)
	})
	return configs, nil
}

// Delete removes a saved configuration; removing a missing one succeeds
func (r *BoltSavedConfigurationRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		all := tx.Bucket(savedConfigurationsBucket)
		raw := all.Get([]byte(id))
		if raw == nil {
			return nil
		}
		var cfg models.SavedConfiguration
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return err
		}
		if err := tx.Bucket(savedConfigurationsByUser).Delete(joinKey(cfg.UserID, id)); err != nil {
			return err
		}
		return all.Delete([]byte(id))
	})
	if err != nil {
		return storeErr("delete saved configuration", err)
	}
	return nil
}
