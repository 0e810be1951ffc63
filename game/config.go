package game

import (
	"fmt"

	"github.com/plus3/fallblock/blocks"
)

// Config describes one game session.
type Config struct {
	Columns int
	Rows    int
	// CutIfBlocked lets a partly blocked piece shed its blocked cells and keep falling.
	CutIfBlocked bool
	// SpawnRow is the row new pieces are placed at. Negative values start them
	// above the board.
	SpawnRow int
	// FallSpeed is rows per second. Zero moves the piece one row on every tick.
	FallSpeed float64
}

// DefaultConfig returns a 10x20 board with cutting enabled.
func DefaultConfig() Config {
	return Config{
		Columns:      10,
		Rows:         20,
		CutIfBlocked: true,
	}
}

// Validate reports whether a board can be built from c.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Columns > blocks.MaxRowWidth {
		return fmt.Errorf("columns must be within 1..%d, got %d", blocks.MaxRowWidth, c.Columns)
	}
	if c.Rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	if c.SpawnRow >= c.Rows {
		return fmt.Errorf("spawn row %d is below the board", c.SpawnRow)
	}
	if c.FallSpeed < 0 {
		return fmt.Errorf("fall speed must not be negative, got %g", c.FallSpeed)
	}
	return nil
}
