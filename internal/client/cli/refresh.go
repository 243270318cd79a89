package cli

import (
	"context"
	"fmt"
)

// RunRefresh принудительно обновляет кэш коллекции из источника
func (c *Cli) RunRefresh(ctx context.Context) error {
	c.io.Println("Refreshing photo collection...")

	photos, err := c.cacheService.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh collection: %w", err)
	}

	c.io.Printf("Collection refreshed: %d photo(s)\n", len(photos))
	return nil
}
