package cli

import (
	"context"
	"fmt"
	"strconv"
)

// RunPeek показывает фотографию со смещением offset дней от сегодняшней
// и прогревает кэш изображений вокруг этой позиции
func (c *Cli) RunPeek(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing offset. Usage: frontlawn peek <offset>")
	}

	offset, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid offset %q: must be an integer", args[0])
	}

	state, err := c.session.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	// Сырой индекс сдвигается как при ручной навигации,
	// нормализация выполняется при чтении
	state.Index += offset

	c.io.Printf("Peeking %+d day(s) from today\n", offset)
	c.printPhoto(state)

	// Прогреваем соседей выбранной позиции; неудача не мешает показу
	if err := c.preloader.Preload(ctx, state.Photos, state.Index); err != nil {
		c.io.Printf("Warning: neighbor preload failed: %v\n", err)
	}

	return nil
}
