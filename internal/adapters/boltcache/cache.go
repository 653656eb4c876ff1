// Package boltcache implements ports.ModelCache using bbolt. One bucket
// holds the latest trained-weights snapshot plus the store fingerprint it
// was trained against. Writes are transactional — a crash mid-write cannot
// corrupt a previously committed snapshot.
package boltcache

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketModel    = []byte("model")
	keySnapshot    = []byte("snapshot")
	keyFingerprint = []byte("fingerprint")
)

// Cache implements ports.ModelCache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) the cache database at the given path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltcache open: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Load returns the cached snapshot when the stored fingerprint matches.
// Returns nil, nil on miss or mismatch.
func (c *Cache) Load(fingerprint string) ([]byte, error) {
	var snap []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketModel)
		if b == nil {
			return nil
		}
		if string(b.Get(keyFingerprint)) != fingerprint {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(keySnapshot); v != nil {
			snap = make([]byte, len(v))
			copy(snap, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Save stores a snapshot with its fingerprint, replacing any prior entry.
func (c *Cache) Save(fingerprint string, snapshot []byte) error {
	if snapshot == nil {
		return fmt.Errorf("boltcache: nil snapshot")
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketModel)
		if err != nil {
			return err
		}
		if err := b.Put(keyFingerprint, []byte(fingerprint)); err != nil {
			return err
		}
		return b.Put(keySnapshot, snapshot)
	})
}

// Invalidate drops the cached snapshot. Idempotent.
func (c *Cache) Invalidate() error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketModel); err == bolt.ErrBucketNotFound {
			return nil
		} else {
			return err
		}
	})
}
