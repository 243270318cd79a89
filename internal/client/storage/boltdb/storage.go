package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketCollection = []byte("collection")
	bucketIdentity   = []byte("identity")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Создаем bucket для кэша коллекции
		if _, err := tx.CreateBucketIfNotExists(bucketCollection); err != nil {
			return fmt.Errorf("failed to create collection bucket: %w", err)
		}

		// Создаем bucket для идентичности клиента
		if _, err := tx.CreateBucketIfNotExists(bucketIdentity); err != nil {
			return fmt.Errorf("failed to create identity bucket: %w", err)
		}

		return nil
	})
}

// Keys returns the names of all keys stored across buckets.
// Используется командой status для проверки наличия кэша
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketCollection, bucketIdentity} {
			bucket := tx.Bucket(name)
			if bucket == nil {
				continue
			}

			if err := bucket.ForEach(func(k, _ []byte) error {
				keys = append(keys, string(k))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}
