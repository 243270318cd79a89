package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/darkobits/frontlawn-website/internal/client/storage"
)

// nameKey фиксированный ключ, под которым хранится имя клиента
var nameKey = []byte("name")

// SaveClientName persists the client name
func (s *Storage) SaveClientName(ctx context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		// Сохраняем имя как есть, без сериализации
		if err := bucket.Put(nameKey, []byte(name)); err != nil {
			return fmt.Errorf("failed to save client name: %w", err)
		}

		return nil
	})
}

// GetClientName retrieves the persisted client name
func (s *Storage) GetClientName(ctx context.Context) (string, error) {
	var name string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		// Получаем имя
		data := bucket.Get(nameKey)
		if data == nil {
			return storage.ErrClientNameNotFound
		}

		name = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return name, nil
}
