package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/darkobits/frontlawn-website/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного источника коллекции
type ClientAPI interface {
	// FetchCollection загружает полную коллекцию фотографий
	// Источник возвращает фотографии в фиксированном порядке
	FetchCollection(ctx context.Context) ([]api.Photo, error)
}

// Client represents HTTP client for the remote photo source
type Client struct {
	httpClient *http.Client
	sourceURL  string
}

// NewClient создает новый клиент источника
// sourceURL - полный URL, отдающий коллекцию фотографий как JSON массив
func NewClient(sourceURL string) *Client {
	return &Client{
		sourceURL: sourceURL,
		httpClient: &http.Client{
			// Собственных таймаутов на уровне запросов ядро не добавляет,
			// зависший запрос ограничен только таймаутом транспорта
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCollection загружает полную коллекцию фотографий из источника
func (c *Client) FetchCollection(ctx context.Context) ([]api.Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	var photos []api.Photo
	if err := json.Unmarshal(respBody, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return photos, nil
}
