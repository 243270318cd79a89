package preload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/darkobits/frontlawn-website/internal/client/rotation"
	"github.com/darkobits/frontlawn-website/internal/models"
)

// ErrImageLoad indicates that a neighbor image failed to load.
// Не блокирует показ текущей фотографии и не мешает дальнейшей навигации
var ErrImageLoad = errors.New("image load failed")

// defaultCacheSize количество изображений, удерживаемых в памяти
const defaultCacheSize = 8

//go:generate moq -out preloader_mock.go . Preloader

// Preloader определяет интерфейс предзагрузчика соседних фотографий
type Preloader interface {
	// Preload прогревает кэш изображений для соседей позиции index:
	// следующая фотография загружается синхронно (возврат - сигнал
	// завершения ее загрузки), предыдущая - в фоне без ожидания
	Preload(ctx context.Context, photos []models.Photo, index int) error
}

// Preloader warms the in-memory image cache for photos adjacent
// to the current rotation index
type preloader struct {
	httpClient *http.Client
	images     *imageCache
	logger     *slog.Logger
}

// New creates a new neighbor preloader
func New(httpClient *http.Client, logger *slog.Logger) Preloader {
	return &preloader{
		httpClient: httpClient,
		images:     newImageCache(defaultCacheSize),
		logger:     logger,
	}
}

// Preload загружает фотографию на позиции index+1 и возвращается по
// завершении ее загрузки; фотография на позиции index-1 загружается
// fire-and-forget для плавной навигации назад, ее исход на результат
// не влияет
func (p *preloader) Preload(ctx context.Context, photos []models.Photo, index int) error {
	if len(photos) == 0 {
		return nil
	}

	next := photos[rotation.NormalizeIndex(index+1, len(photos))]
	prev := photos[rotation.NormalizeIndex(index-1, len(photos))]

	// Предыдущего соседа никто не ждет, поэтому и отмены у него нет
	go func() {
		if err := p.load(context.Background(), prev); err != nil {
			p.logger.Warn("Failed to preload previous photo",
				"photo_id", prev.ID,
				"error", err)
		}
	}()

	if err := p.load(ctx, next); err != nil {
		return fmt.Errorf("%w: photo %s: %s", ErrImageLoad, next.ID, err)
	}

	p.logger.Debug("Preloaded next photo", "photo_id", next.ID)
	return nil
}

// load скачивает изображение в кэш, если его там еще нет
func (p *preloader) load(ctx context.Context, photo models.Photo) error {
	if _, ok := p.images.get(photo.ID); ok {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photo.FullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image body: %w", err)
	}

	p.images.put(photo.ID, data)
	return nil
}
