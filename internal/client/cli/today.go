package cli

import (
	"context"
	"fmt"

	"github.com/darkobits/frontlawn-website/internal/client/rotation"
)

// RunToday запускает сессию и показывает фотографию текущего дня.
// overrideIndex - отладочная подмена позиции; она накладывается на уже
// вычисленное состояние, внутрь кэша и ротации не проникает
func (c *Cli) RunToday(ctx context.Context, overrideIndex *int) error {
	state, err := c.session.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if overrideIndex != nil {
		state.Index = *overrideIndex
		c.io.Printf("(development override: index forced to %d)\n", *overrideIndex)
	}

	c.printPhoto(state)
	return nil
}

// printPhoto выводит фотографию на текущей позиции состояния
func (c *Cli) printPhoto(state rotation.State) {
	photo := state.Current()
	position := rotation.NormalizeIndex(state.Index, len(state.Photos))

	c.io.Printf("Photo %d of %d\n", position+1, len(state.Photos))
	c.io.Printf("  ID:    %s\n", photo.ID)
	c.io.Printf("  Color: %s\n", photo.Color)
	c.io.Printf("  URL:   %s\n", photo.FullURL)
}
