package storage

import (
	"context"

	"github.com/darkobits/frontlawn-website/internal/models"
)

//go:generate moq -out collection_mock.go . CollectionStorage

// CollectionStorage defines interface for the persisted photo collection cache.
// Записи перезаписываются целиком: read-then-write без транзакционной защиты,
// при конкурентном обновлении (например, два процесса) побеждает последняя запись.
type CollectionStorage interface {
	// SaveCollection stores the cache entry under the fixed collection key.
	// Запись best-effort: вызывающая сторона может проигнорировать ошибку
	SaveCollection(ctx context.Context, entry *models.CacheEntry) error

	// GetCollection retrieves the stored cache entry.
	// Returns ErrCollectionNotFound if no collection has been cached yet
	GetCollection(ctx context.Context) (*models.CacheEntry, error)
}
