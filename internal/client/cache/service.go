package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/darkobits/frontlawn-website/internal/client/api"
	"github.com/darkobits/frontlawn-website/internal/client/storage"
	"github.com/darkobits/frontlawn-website/internal/models"
)

// ErrSourceUnavailable indicates that the remote source failed and no cache exists.
// Фатальна для первого рендера: показывать нечего
var ErrSourceUnavailable = errors.New("photo source unavailable")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для cache.Service
type Service interface {
	// GetCollection возвращает коллекцию фотографий по схеме stale-while-revalidate
	GetCollection(ctx context.Context) ([]models.Photo, error)

	// Refresh принудительно загружает коллекцию из источника и перезаписывает кэш
	Refresh(ctx context.Context) ([]models.Photo, error)
}

// Option настраивает cache service
type Option func(*service)

// WithRefreshErrorHook устанавливает callback, вызываемый при ошибке
// фоновой ревалидации. Ошибка при этом по-прежнему гасится локально:
// hook дает наблюдаемость, не меняя поведения
func WithRefreshErrorHook(hook func(error)) Option {
	return func(s *service) {
		s.onRefreshError = hook
	}
}

// Service handles the local photo collection cache
type service struct {
	apiClient      httpClient.ClientAPI
	storage        storage.CollectionStorage
	ttl            time.Duration
	logger         *slog.Logger
	onRefreshError func(error)
}

// NewService creates a new cache service
// ttl - длительность, после которой закэшированная коллекция считается устаревшей
func NewService(apiClient httpClient.ClientAPI, collectionStorage storage.CollectionStorage, ttl time.Duration, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		apiClient: apiClient,
		storage:   collectionStorage,
		ttl:       ttl,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetCollection возвращает коллекцию фотографий.
// 1. Кэша нет - синхронно загружаем из источника, сохраняем, возвращаем
// 2. Кэш есть и устарел (age >= TTL) - возвращаем его сразу, обновление
//    уходит в фон и никогда не ждется вызывающей стороной
// 3. Кэш есть и свежий - возвращаем сразу
// Никогда не возвращает пустую коллекцию без ошибки.
//
// Хранимая запись перезаписывается без транзакционной защиты: два процесса,
// ревалидирующие одновременно, гонятся по схеме last-writer-wins. Для кэша
// ротации это принятый компромисс, блокировки здесь не нужны.
func (s *service) GetCollection(ctx context.Context) ([]models.Photo, error) {
	entry, err := s.storage.GetCollection(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCollectionNotFound) {
			// Поврежденное хранилище не фатально: идем за коллекцией в источник
			s.logger.Warn("Failed to read cached collection", "error", err)
		}
		return s.fetchAndPersist(ctx)
	}

	if len(entry.Photos) == 0 {
		// Пустая запись равносильна отсутствию кэша
		s.logger.Warn("Cached collection is empty, refetching")
		return s.fetchAndPersist(ctx)
	}

	age := entry.Age(time.Now())
	if age >= s.ttl {
		s.logger.Info("Cached collection is stale, refreshing in background",
			"age", age.Round(time.Second),
			"ttl", s.ttl)

		// Ревалидация не на критическом пути: вызывающая сторона получает
		// существующую (возможно устаревшую) запись немедленно.
		// Фоновый запрос переживает контекст вызова намеренно - отмены нет
		go s.backgroundRefresh(context.Background())
	}

	return entry.Photos, nil
}

// Refresh принудительно загружает коллекцию из источника, минуя проверку TTL
func (s *service) Refresh(ctx context.Context) ([]models.Photo, error) {
	return s.fetchAndPersist(ctx)
}

// fetchAndPersist синхронно загружает коллекцию и сохраняет ее best-effort:
// ошибка записи в хранилище гасится, результат чтения от нее не зависит
func (s *service) fetchAndPersist(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	entry := &models.CacheEntry{
		Photos:    photos,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveCollection(ctx, entry); err != nil {
		s.logger.Warn("Failed to persist collection cache", "error", err)
		// Не прерываем чтение из-за ошибки сохранения
	}

	return photos, nil
}

// backgroundRefresh обновляет хранимую запись. Любая ошибка гасится:
// существующая запись остается нетронутой, следующее чтение устаревшего
// кэша попробует снова
func (s *service) backgroundRefresh(ctx context.Context) {
	photos, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("Background refresh failed, keeping existing cache", "error", err)
		if s.onRefreshError != nil {
			s.onRefreshError(err)
		}
		return
	}

	entry := &models.CacheEntry{
		Photos:    photos,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveCollection(ctx, entry); err != nil {
		s.logger.Warn("Failed to persist refreshed collection", "error", err)
		if s.onRefreshError != nil {
			s.onRefreshError(err)
		}
		return
	}

	s.logger.Info("Collection cache refreshed", "photos", len(photos))
}

// fetch загружает коллекцию из источника и конвертирует wire формат в модель
func (s *service) fetch(ctx context.Context) ([]models.Photo, error) {
	apiPhotos, err := s.apiClient.FetchCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}

	if len(apiPhotos) == 0 {
		return nil, fmt.Errorf("%w: source returned empty collection", ErrSourceUnavailable)
	}

	photos := make([]models.Photo, 0, len(apiPhotos))
	for _, p := range apiPhotos {
		photos = append(photos, models.Photo{
			ID:      p.ID,
			Color:   p.Color,
			FullURL: p.URLs.Full,
		})
	}

	return photos, nil
}
