package storage

import "context"

//go:generate moq -out identity_mock.go . IdentityStorage

// IdentityStorage defines interface for the persisted client identity token.
// Токен - непрозрачная строка ("имя" клиента), создается один раз
// и дальше только читается; используется как seed для перемешивания
type IdentityStorage interface {
	// SaveClientName persists the client name
	SaveClientName(ctx context.Context, name string) error

	// GetClientName retrieves the persisted client name.
	// Returns ErrClientNameNotFound if no name has been saved yet
	GetClientName(ctx context.Context) (string, error)
}

//go:generate moq -out keys_mock.go . KeyLister

// KeyLister defines interface for listing keys present in client storage.
// Используется для проверки наличия кэша (например, командой status)
type KeyLister interface {
	// Keys returns the names of all keys currently stored
	Keys(ctx context.Context) ([]string, error)
}
