package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkobits/frontlawn-website/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	sourceURL := "http://localhost:8080/photos"
	client := NewClient(sourceURL)

	assert.NotNil(t, client)
	assert.Equal(t, sourceURL, client.sourceURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_FetchCollection проверяет успешную загрузку коллекции
func TestClient_FetchCollection(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/photos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		// Возвращаем коллекцию
		photos := []api.Photo{
			{ID: "a1", Color: "#0c3a28", URLs: api.PhotoURLs{Full: "https://images.example.com/a1/full"}},
			{ID: "b2", Color: "#60544d", URLs: api.PhotoURLs{Full: "https://images.example.com/b2/full"}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(photos)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/photos")

	photos, err := client.FetchCollection(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 2)

	assert.Equal(t, "a1", photos[0].ID)
	assert.Equal(t, "#0c3a28", photos[0].Color)
	assert.Equal(t, "https://images.example.com/a1/full", photos[0].URLs.Full)
	assert.Equal(t, "b2", photos[1].ID)
}

// TestClient_FetchCollection_ServerError проверяет обработку ошибки сервера
func TestClient_FetchCollection_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	photos, err := client.FetchCollection(context.Background())
	assert.Error(t, err)
	assert.Nil(t, photos)
	assert.Contains(t, err.Error(), "status 500")
}

// TestClient_FetchCollection_InvalidJSON проверяет обработку некорректного ответа
func TestClient_FetchCollection_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	photos, err := client.FetchCollection(context.Background())
	assert.Error(t, err)
	assert.Nil(t, photos)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestClient_FetchCollection_ConnectionRefused проверяет обработку недоступного источника
func TestClient_FetchCollection_ConnectionRefused(t *testing.T) {
	// Закрываем сервер сразу, чтобы получить connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)

	photos, err := client.FetchCollection(context.Background())
	assert.Error(t, err)
	assert.Nil(t, photos)
}
