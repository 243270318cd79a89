package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darkobits/frontlawn-website/internal/client/storage"
)

// RunStatus показывает состояние локального кэша и идентичности клиента
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Cache Status ===")
	c.io.Println()

	entry, err := c.collectionStorage.GetCollection(ctx)
	switch {
	case errors.Is(err, storage.ErrCollectionNotFound):
		c.io.Println("Collection: not cached")
		c.io.Println()
		c.io.Println("Run 'frontlawn refresh' to populate the cache.")
	case err != nil:
		return fmt.Errorf("failed to read collection cache: %w", err)
	default:
		age := entry.Age(time.Now())
		c.io.Printf("Collection: %d photo(s)\n", len(entry.Photos))
		c.io.Printf("Updated:    %s (%s ago)\n",
			entry.UpdatedAt.Format(time.RFC3339),
			age.Round(time.Second))

		if entry.IsStale(time.Now(), c.ttl) {
			c.io.Printf("Freshness:  stale (TTL %s), will refresh on next read\n", c.ttl)
		} else {
			c.io.Printf("Freshness:  fresh (TTL %s)\n", c.ttl)
		}
	}

	c.io.Println()

	name, err := c.identityStorage.GetClientName(ctx)
	switch {
	case errors.Is(err, storage.ErrClientNameNotFound):
		c.io.Println("Identity: not created yet")
	case err != nil:
		return fmt.Errorf("failed to read client name: %w", err)
	default:
		c.io.Printf("Identity: %s\n", name)
	}

	keys, err := c.keyLister.Keys(ctx)
	if err != nil {
		// Не прерываем выполнение, остальной статус уже показан
		c.io.Printf("Warning: failed to list storage keys: %v\n", err)
		return nil
	}

	c.io.Printf("Stored keys: %d", len(keys))
	c.io.Println()
	for _, key := range keys {
		c.io.Printf("  - %s\n", key)
	}

	return nil
}
