// internal/record/bolt.go
package record

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var recordsBucket = []byte("records")

// BoltCache persists fetched records in a bolt database. A hit returns the
// stored record without touching Next; a miss fetches from Next and stores
// the result. Failed fetches are never stored.
type BoltCache struct {
	db   *bolt.DB
	Next Source

	hits, misses atomic.Int64
}

// OpenBoltCache opens (or creates) the database at path.
func OpenBoltCache(path string, next Source) (*BoltCache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("record cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("record cache %s: %w", path, err)
	}
	return &BoltCache{db: db, Next: next}, nil
}

func cacheKey(k Key) []byte {
	return []byte(k.Accession + "\x00" + k.Contact)
}

func (c *BoltCache) Fetch(ctx context.Context, key Key) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec *Record
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get(cacheKey(key))
		if v == nil {
			return nil
		}
		rec = new(Record)
		return msgpack.Unmarshal(v, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("record cache: decode %s: %w", key.Accession, err)
	}
	if rec != nil {
		c.hits.Add(1)
		return rec, nil
	}

	c.misses.Add(1)
	if c.Next == nil {
		return nil, fmt.Errorf("%s: %w", key.Accession, ErrNotFound)
	}
	rec, err = c.Next.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	value, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("record cache: encode %s: %w", key.Accession, err)
	}
	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put(cacheKey(key), value)
	})
	if err != nil {
		return nil, fmt.Errorf("record cache: store %s: %w", key.Accession, err)
	}
	return rec, nil
}

// Stats reports cache hits and misses since open.
func (c *BoltCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *BoltCache) Close() error { return c.db.Close() }
