package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/darkobits/frontlawn-website/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для identity.Service
type Service interface {
	// GetOrCreate возвращает персистентное имя клиента,
	// при первом обращении создает и сохраняет новое
	GetOrCreate(ctx context.Context) (string, error)
}

// Service manages the persisted client identity token.
// Имя - непрозрачный токен, используется только как seed для
// детерминированного перемешивания, не для аутентификации
type service struct {
	storage storage.IdentityStorage
	logger  *slog.Logger
}

// NewService creates a new identity service
func NewService(identityStorage storage.IdentityStorage, logger *slog.Logger) Service {
	return &service{
		storage: identityStorage,
		logger:  logger,
	}
}

// GetOrCreate возвращает сохраненное имя клиента.
// Если имени еще нет - генерирует новое и сохраняет best-effort:
// ошибка записи не фатальна, имя остается валидным до конца сессии
func (s *service) GetOrCreate(ctx context.Context) (string, error) {
	name, err := s.storage.GetClientName(ctx)
	if err == nil {
		return name, nil
	}

	if !errors.Is(err, storage.ErrClientNameNotFound) {
		return "", fmt.Errorf("failed to read client name: %w", err)
	}

	// Первый визит этого клиента - создаем имя
	name = uuid.NewString()

	if err := s.storage.SaveClientName(ctx, name); err != nil {
		// Следующая сессия получит другое имя и другой порядок ротации,
		// но текущая остается рабочей
		s.logger.Warn("Failed to persist client name", "error", err)
	} else {
		s.logger.Info("Created new client identity", "name", name)
	}

	return name, nil
}
