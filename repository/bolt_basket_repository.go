package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"oakframe-configurator/models"
)

// BoltBasketRepository stores basket lines in the basket bucket
// basket_index maps user, product and config hash to the line id, so merges and
// per-user listings never scan the whole collection.
type BoltBasketRepository struct {
	store *BoltStore
	now   func() time.Time
}

// NewBoltBasketRepository creates a new BoltBasketRepository
func NewBoltBasketRepository(store *BoltStore) *BoltBasketRepository {
	return &BoltBasketRepository{store: store, now: time.Now}
}

// Ensure BoltBasketRepository implements BasketRepositoryInterface
var _ BasketRepositoryInterface = (*BoltBasketRepository)(nil)

// boltBasketRecord keeps the config hash, which the API representation hides
type boltBasketRecord struct {
	models.BasketItem
	Hash string `json:"configHash"`
}

func (r boltBasketRecord) item() models.BasketItem {
	item := r.BasketItem
	item.ConfigHash = r.Hash
	return item
}

func basketIndexKey(userID, productID, hash string) []byte {
	return joinKey(userID, productID, hash)
}

// AddOrMerge inserts a basket line or adds to the quantity of the equivalent one
func (r *BoltBasketRepository) AddOrMerge(ctx context.Context, item *models.BasketItem) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var id string
	var merged bool
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		lines := tx.Bucket(basketBucket)
		index := tx.Bucket(basketIndexBucket)
		key := basketIndexKey(item.UserID, item.ProductID, item.ConfigHash)
		now := r.now().UTC()

		if existing := index.Get(key); existing != nil {
			id = string(existing)
			var record boltBasketRecord
			if raw := lines.Get(existing); raw != nil {
				if err := json.Unmarshal(raw, &record); err != nil {
					return err
				}
				if record.Quantity+item.Quantity > models.MaxQuantity {
					return models.QuantityExceeded(record.Quantity + item.Quantity)
				}
				record.Quantity += item.Quantity
				record.UpdatedAt = now
				merged = true
				return putJSON(lines, existing, record)
			}
			// dangling index entry, fall through and insert
		}

		id = uuid.NewString()
		record := boltBasketRecord{BasketItem: *item, Hash: item.ConfigHash}
		record.ID = id
		record.CreatedAt = now
		record.UpdatedAt = now
		if err := putJSON(lines, []byte(id), record); err != nil {
			return err
		}
		return index.Put(key, []byte(id))
	})
	if errors.Is(err, models.ErrInvalidRequest) {
		return "", false, err
	}
	if err != nil {
		return "", false, storeErr("upsert basket item", err)
	}
	return id, merged, nil
}

// GetByID retrieves a basket line
func (r *BoltBasketRepository) GetByID(ctx context.Context, id string) (*models.BasketItem, error) {
	var record *boltBasketRecord
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(basketBucket).Get([]byte(id))
		if raw == nil {
			return nil
		}
		record = &boltBasketRecord{}
		return json.Unmarshal(raw, record)
	})
	if err != nil {
		return nil, storeErr("get basket item", err)
	}
	if record == nil {
		return nil, notFound("basket item", id)
	}
	item := record.item()
	return &item, nil
}

// UpdateQuantity overwrites the quantity of a line
func (r *BoltBasketRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	found := false
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		lines := tx.Bucket(basketBucket)
		raw := lines.Get([]byte(id))
		if raw == nil {
			return nil
		}
		found = true
		var record boltBasketRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		record.Quantity = quantity
		record.UpdatedAt = r.now().UTC()
		return putJSON(lines, []byte(id), record)
	})
	if err != nil {
		return storeErr("update basket quantity", err)
	}
	if !found {
		return notFound("basket item", id)
	}
	return nil
}

// Delete removes a line and its index entry; removing a missing line succeeds
func (r *BoltBasketRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		lines := tx.Bucket(basketBucket)
		raw := lines.Get([]byte(id))
		if raw == nil {
			return nil
		}
		var record boltBasketRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		index := tx.Bucket(basketIndexBucket)
		key := basketIndexKey(record.UserID, record.ProductID, record.Hash)
		if string(index.Get(key)) == id {
			if err := index.Delete(key); err != nil {
				return err
			}
		}
		return lines.Delete([]byte(id))
	})
	if err != nil {
		return storeErr("delete basket item", err)
	}
	return nil
}

// ListByUser retrieves every line of a user, newest first
func (r *BoltBasketRepository) ListByUser(ctx context.Context, userID string) ([]models.BasketItem, error) {
	items := []models.BasketItem{}
	err := r.store.db.View(func(tx *bolt.Tx) error {
		lines := tx.Bucket(basketBucket)
		prefix := append(joinKey(userID), keySep...)
		for _, id := range prefixValues(tx.Bucket(basketIndexBucket), prefix) {
			raw := lines.Get(id)
			if raw == nil {
				continue
			}
			var record boltBasketRecord
			if err := json.Unmarshal(raw, &record); err != nil {
				return err
			}
			items = append(items, record.item())
		}
		return nil
	})
	if err != nil {
		return nil, storeErr("query basket", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func putJSON(bucket *bolt.Bucket, key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return bucket.Put(key, raw)
}
