// Package config holds the game settings shared by the local binary and the
// SSH server.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

var (
	ErrInvalidBoard = errors.New("invalid board size")
	ErrInvalidMines = errors.New("invalid mine count")
	ErrInvalidCell  = errors.New("invalid cell size")
)

// Minimum cell size: a border on each side plus one row of content, two
// columns wide so emoji glyphs fit.
const (
	MinCellWidth  = 4
	MinCellHeight = 3
)

// Config describes one game.
type Config struct {
	Rows       int
	Columns    int
	Mines      int
	CellWidth  int   // terminal columns per tile, borders included
	CellHeight int   // terminal rows per tile, borders included
	Seed       int64 // 0 picks a random board
}

// Default returns the beginner layout: 9x9 with 10 mines.
func Default() Config {
	return Config{
		Rows:       9,
		Columns:    9,
		Mines:      10,
		CellWidth:  5,
		CellHeight: 3,
	}
}

// Validate rejects settings the board or renderer cannot honour.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%dx%d: %w", c.Rows, c.Columns, ErrInvalidBoard)
	}
	if c.Mines < 0 || c.Mines > c.Rows*c.Columns {
		return fmt.Errorf("%d mines for %d tiles: %w", c.Mines, c.Rows*c.Columns, ErrInvalidMines)
	}
	if c.CellWidth < MinCellWidth || c.CellHeight < MinCellHeight {
		return fmt.Errorf("%dx%d (minimum %dx%d): %w",
			c.CellWidth, c.CellHeight, MinCellWidth, MinCellHeight, ErrInvalidCell)
	}
	return nil
}

// RegisterFlags binds the game flags on fs to c. Current values of c are
// used as defaults.
func RegisterFlags(fs *pflag.FlagSet, c *Config) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "The number of rows in the minefield")
	fs.IntVar(&c.Columns, "cols", c.Columns, "The number of columns in the minefield")
	fs.IntVar(&c.Mines, "mines", c.Mines, "The number of mines in the minefield")
	fs.IntVar(&c.CellWidth, "cell-width", c.CellWidth, "The width of each cell in the minefield")
	fs.IntVar(&c.CellHeight, "cell-height", c.CellHeight, "The height of each cell in the minefield")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for mine placement (0 = random)")
}
