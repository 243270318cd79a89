package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/darkobits/frontlawn-website/internal/client/storage"
	"github.com/darkobits/frontlawn-website/internal/models"
)

// collectionKey фиксированный ключ, под которым хранится кэш коллекции
var collectionKey = []byte("photoCollection")

// SaveCollection stores the photo collection cache entry
func (s *Storage) SaveCollection(ctx context.Context, entry *models.CacheEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollection)
		if bucket == nil {
			return fmt.Errorf("collection bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal cache entry: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(collectionKey, data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}

		return nil
	})
}

// GetCollection retrieves the stored photo collection cache entry
func (s *Storage) GetCollection(ctx context.Context) (*models.CacheEntry, error) {
	var entry *models.CacheEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollection)
		if bucket == nil {
			return fmt.Errorf("collection bucket not found")
		}

		// Получаем данные
		data := bucket.Get(collectionKey)
		if data == nil {
			return storage.ErrCollectionNotFound
		}

		// Десериализуем
		entry = &models.CacheEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}
