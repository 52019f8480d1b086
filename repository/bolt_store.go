package repository

import (
	"bytes"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	productsBucket            = []byte("products")
	basketBucket              = []byte("basket")
	basketIndexBucket         = []byte("basket_index")
	savedConfigurationsBucket = []byte("saved_configurations")
	savedConfigurationsByUser = []byte("saved_configurations_by_user")
)

const keySep = "\x00"

// BoltStore is an embedded document store with one bucket per collection
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the store file and its buckets
func OpenBoltStore(path string) (*BoltStore, error) {
	conn, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, storeErr("open bolt store", err)
	}

	err = conn.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{productsBucket, basketBucket, basketIndexBucket, savedConfigurationsBucket, savedConfigurationsByUser} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		conn.Close()
		return nil, storeErr("create bolt buckets", err)
	}

	zap.S().Infof("✅ Bolt store opened at %s", path)
	return &BoltStore{db: conn}, nil
}

// Close closes the store file
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func joinKey(parts ...string) []byte {
	var b bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			b.WriteString(keySep)
		}
		b.WriteString(p)
	}
	return b.Bytes()
}

// prefixValues returns the values of every key starting with prefix
func prefixValues(bucket *bolt.Bucket, prefix []byte) [][]byte {
	var out [][]byte
	c := bucket.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		out = append(out, append([]byte(nil), v...))
	}
	return out
}
