// Package cache stores finished translations in a bolt database.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/dnaprot/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cache")

// MAIN is the bucket name for all translations.
var MAIN = []byte("translations")

// Entry stores a single translation.
type Entry struct {
	Protein string    `json:"protein"`
	Decoder string    `json:"decoder"`
	Offset  int       `json:"offset"`
	Stopped bool      `json:"stopped"`
	Time    time.Time `json:"time"`
}

// Cache reads and writes translations. A Cache without a database
// never finds anything and silently drops writes.
type Cache struct {
	db *bolt.DB
}

// New creates a new Cache using the database.
func New(db *bolt.DB) *Cache {
	return &Cache{db: db}
}

// Open opens (or creates) a bolt database file and returns a Cache
// using it.
func Open(fn string) (*Cache, error) {
	db, err := bolt.Open(fn, 0666, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Key returns the database key for a sequence. Sequences are
// normalized first, so the key doesn't depend on the case.
func Key(seq string) []byte {
	h := sha256.Sum256([]byte(bio.Normalize(seq)))
	return h[:]
}

// Put saves translation of the sequence.
func (c *Cache) Put(seq string, e *Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Error("Error serializing translation", err)
		return err
	}
	err = SaveData(c.db, Key(seq), data)
	if err != nil {
		log.Error("Error saving translation", err)
	}
	return err
}

// Get returns translation of the sequence or nil if there is none.
func (c *Cache) Get(seq string) (*Entry, error) {
	var e *Entry

	b, err := LoadData(c.db, Key(seq))
	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &e)
	if err != nil {
		return nil, err
	}
	log.Debugf("Found cached translation (decoder=%s, length=%d)", e.Decoder, len(e.Protein))
	return e, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		return b.Put(key, data)
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid during the transaction
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
