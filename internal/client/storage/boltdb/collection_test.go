package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkobits/frontlawn-website/internal/client/storage"
	"github.com/darkobits/frontlawn-website/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestSaveCollection_GetCollection(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entry := &models.CacheEntry{
		Photos: []models.Photo{
			{ID: "a1", Color: "#0c3a28", FullURL: "https://images.example.com/a1/full"},
			{ID: "b2", Color: "#60544d", FullURL: "https://images.example.com/b2/full"},
		},
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.SaveCollection(ctx, entry))

	got, err := store.GetCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry.Photos, got.Photos)
	assert.True(t, entry.UpdatedAt.Equal(got.UpdatedAt))
}

func TestGetCollection_NotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.GetCollection(context.Background())
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
	assert.Nil(t, got)
}

func TestSaveCollection_Overwrite(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := &models.CacheEntry{
		Photos:    []models.Photo{{ID: "a1", Color: "#0c3a28", FullURL: "https://images.example.com/a1"}},
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveCollection(ctx, first))

	// Повторная запись целиком заменяет предыдущую (last writer wins)
	second := &models.CacheEntry{
		Photos: []models.Photo{
			{ID: "b2", Color: "#60544d", FullURL: "https://images.example.com/b2"},
			{ID: "c3", Color: "#1a2b3c", FullURL: "https://images.example.com/c3"},
		},
		UpdatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveCollection(ctx, second))

	got, err := store.GetCollection(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Photos, got.Photos)
	assert.True(t, second.UpdatedAt.Equal(got.UpdatedAt))
}
