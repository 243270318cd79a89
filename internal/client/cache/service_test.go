package cache

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/darkobits/frontlawn-website/internal/client/api"
	"github.com/darkobits/frontlawn-website/internal/client/storage"
	"github.com/darkobits/frontlawn-website/internal/models"
	"github.com/darkobits/frontlawn-website/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testAPIPhotos() []api.Photo {
	return []api.Photo{
		{ID: "a1", Color: "#0c3a28", URLs: api.PhotoURLs{Full: "https://images.example.com/a1/full"}},
		{ID: "b2", Color: "#60544d", URLs: api.PhotoURLs{Full: "https://images.example.com/b2/full"}},
		{ID: "c3", Color: "#1a2b3c", URLs: api.PhotoURLs{Full: "https://images.example.com/c3/full"}},
	}
}

func testCachedPhotos() []models.Photo {
	return []models.Photo{
		{ID: "x9", Color: "#ffffff", FullURL: "https://images.example.com/x9/full"},
	}
}

func TestGetCollection_CacheMiss(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	var saved *models.CacheEntry
	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return nil, storage.ErrCollectionNotFound
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			saved = entry
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	before := time.Now().UTC()
	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)

	// Ровно один запрос к источнику, коллекция не пустая
	assert.Len(t, mockAPI.FetchCollectionCalls(), 1)
	require.Len(t, photos, 3)
	assert.Equal(t, "a1", photos[0].ID)
	assert.Equal(t, "https://images.example.com/a1/full", photos[0].FullURL)

	// Результат сохранен со свежим timestamp
	require.NotNil(t, saved)
	assert.Equal(t, photos, saved.Photos)
	assert.False(t, saved.UpdatedAt.Before(before))
}

func TestGetCollection_CacheHit_NoFetch(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return &models.CacheEntry{
				Photos:    testCachedPhotos(),
				UpdatedAt: time.Now().UTC().Add(-1 * time.Hour),
			}, nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCachedPhotos(), photos)

	// Свежий кэш - источник не трогаем
	assert.Empty(t, mockAPI.FetchCollectionCalls())
}

func TestGetCollection_StaleRevalidation(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	saved := make(chan *models.CacheEntry, 1)
	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return &models.CacheEntry{
				Photos:    testCachedPhotos(),
				UpdatedAt: time.Now().UTC().Add(-24 * time.Hour),
			}, nil
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			saved <- entry
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	// Устаревшая запись возвращается немедленно
	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCachedPhotos(), photos)

	// Фоновое обновление перезаписывает хранимую запись
	select {
	case entry := <-saved:
		assert.Len(t, entry.Photos, 3)
		assert.Equal(t, "a1", entry.Photos[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("background refresh did not persist a new entry")
	}

	assert.Len(t, mockAPI.FetchCollectionCalls(), 1)
}

func TestGetCollection_StaleRefreshFailed_KeepsCache(t *testing.T) {
	hookCalled := make(chan error, 1)
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return nil, errors.New("network down")
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return &models.CacheEntry{
				Photos:    testCachedPhotos(),
				UpdatedAt: time.Now().UTC().Add(-24 * time.Hour),
			}, nil
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			t.Error("failed refresh must not overwrite the existing entry")
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger(),
		WithRefreshErrorHook(func(err error) {
			hookCalled <- err
		}))

	// Ошибка фоновой ревалидации не видна читателю
	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCachedPhotos(), photos)

	// Hook наблюдаемости получает ошибку
	select {
	case hookErr := <-hookCalled:
		assert.ErrorIs(t, hookErr, ErrSourceUnavailable)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh error hook was not called")
	}
}

func TestGetCollection_SourceUnavailable(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return nil, errors.New("connection refused")
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return nil, storage.ErrCollectionNotFound
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			t.Error("nothing must be persisted when the fetch fails")
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	photos, err := service.GetCollection(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Nil(t, photos)
}

func TestGetCollection_EmptySourceResponse(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return []api.Photo{}, nil
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return nil, storage.ErrCollectionNotFound
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	// Пустая коллекция от источника равносильна его недоступности
	photos, err := service.GetCollection(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Nil(t, photos)
}

func TestGetCollection_PersistenceWriteFailed(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return nil, storage.ErrCollectionNotFound
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			return errors.New("disk full")
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	// Ошибка записи гасится: читатель получает результат из памяти
	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 3)
}

func TestRefresh_BypassesTTL(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	var saved *models.CacheEntry
	mockStorage := &storage.CollectionStorageMock{
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			saved = entry
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	photos, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 3)

	// Кэш перезаписан без обращения к GetCollection
	require.NotNil(t, saved)
	assert.Empty(t, mockStorage.GetCollectionCalls())
	assert.Len(t, mockAPI.FetchCollectionCalls(), 1)
}

func TestGetCollection_CorruptedCache_Refetches(t *testing.T) {
	mockAPI := &httpClient.ClientAPIMock{
		FetchCollectionFunc: func(ctx context.Context) ([]api.Photo, error) {
			return testAPIPhotos(), nil
		},
	}

	mockStorage := &storage.CollectionStorageMock{
		GetCollectionFunc: func(ctx context.Context) (*models.CacheEntry, error) {
			return nil, errors.New("unmarshal failed")
		},
		SaveCollectionFunc: func(ctx context.Context, entry *models.CacheEntry) error {
			return nil
		},
	}

	service := NewService(mockAPI, mockStorage, 12*time.Hour, testLogger())

	photos, err := service.GetCollection(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 3)
	assert.Len(t, mockAPI.FetchCollectionCalls(), 1)
}
