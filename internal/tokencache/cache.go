// Package tokencache memoizes lexer output on disk, keyed by a hash of the
// source bytes, so tools re-run on unchanged inputs can skip the scan.
package tokencache

import (
	"crypto/sha256"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketTokens = []byte("tokens")

// Key identifies a source buffer by content.
type Key [sha256.Size]byte

// Sum returns the cache key for a source buffer.
func Sum(src []byte) Key {
	return sha256.Sum256(src)
}

// Cache is an on-disk token-line store.
type Cache struct {
	db *bolt.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTokens)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Get looks up the token line for a key. The second result is false on a
// miss.
func (c *Cache) Get(key Key) (string, bool, error) {
	var line string
	var ok bool
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketTokens).Get(key[:]); v != nil {
			line = string(v)
			ok = true
		}
		return nil
	})
	return line, ok, err
}

// Put stores the token line for a key, replacing any previous entry.
func (c *Cache) Put(key Key, line string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTokens).Put(key[:], []byte(line))
	})
}

// Close releases the database.
func (c *Cache) Close() error {
	return c.db.Close()
}
