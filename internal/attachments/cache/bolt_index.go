package cache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketAttachments = []byte("attachments")

// BoltIndex persists metadata in a bbolt database so the original cache
// times survive a restart.
type BoltIndex struct {
	db *bolt.DB
}

func NewBoltIndex(path string) (*BoltIndex, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache index: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAttachments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache index bucket: %w", err)
	}
	return &BoltIndex{db: db}, nil
}

func indexKey(key Key) []byte {
	return []byte(key.AccountID + "/" + key.FileID)
}

func (b *BoltIndex) Load(string) ([]Meta, error) {
	var metas []Meta
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAttachments).ForEach(func(_, v []byte) error {
			var meta Meta
			if err := json.Unmarshal(v, &meta); err != nil {
				return nil
			}
			metas = append(metas, meta)
			return nil
		})
	})
	return metas, err
}

func (b *BoltIndex) Put(meta Meta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAttachments).Put(indexKey(meta.key()), data)
	})
}

func (b *BoltIndex) Delete(key Key) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAttachments).Delete(indexKey(key))
	})
}

func (b *BoltIndex) Close() error {
	return b.db.Close()
}
