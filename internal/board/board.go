// Package board implements the minefield: mine placement, adjacency,
// flood reveal, flag accounting and win detection.
package board

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// Board is a rows x columns minefield. Tiles are stored flat, indexed by
// row*columns+column.
type Board struct {
	rows, columns, mines int
	tiles                []Tile

	// exposed holds every index the flood reveal has visited. It only grows.
	exposed mapset.Set[int]

	flagged int
	// correctlyFlagged counts flag placements on mines. It is never
	// decremented, not even when the flag is later removed.
	correctlyFlagged int
}

// New creates a board with mines placed uniformly at random.
// A nil rng uses a generator seeded from the current time.
func New(rows, columns, mines int, rng *rand.Rand) (*Board, error) {
	if err := validate(rows, columns, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Rejection sampling: draw until the set holds the requested count.
	sample := mapset.New[int]()
	for sample.Size() < mines {
		sample.Put(rng.Intn(rows * columns))
	}
	return build(rows, columns, mines, sample), nil
}

// NewWithMines creates a board with mines at the given flat indices.
func NewWithMines(rows, columns int, mines []int) (*Board, error) {
	if err := validate(rows, columns, len(mines)); err != nil {
		return nil, err
	}
	sample := mapset.New[int]()
	for _, i := range mines {
		if i < 0 || i >= rows*columns {
			return nil, fmt.Errorf("mine index %d: %w", i, ErrOutOfRange)
		}
		if sample.Has(i) {
			return nil, fmt.Errorf("duplicate mine index %d: %w", i, ErrInvalidMineCount)
		}
		sample.Put(i)
	}
	return build(rows, columns, len(mines), sample), nil
}

func validate(rows, columns, mines int) error {
	if rows < 1 || columns < 1 {
		return fmt.Errorf("%dx%d: %w", rows, columns, ErrInvalidDimensions)
	}
	if mines < 0 || mines > rows*columns {
		return fmt.Errorf("%d mines on %d tiles: %w", mines, rows*columns, ErrInvalidMineCount)
	}
	return nil
}

func build(rows, columns, mines int, sample mapset.Set[int]) *Board {
	tiles := make([]Tile, rows*columns)
	for i := range tiles {
		row, column := CoordFromIndex(i, columns)
		adj := Adjacent(row, column, rows, columns)
		n := 0
		for _, a := range adj {
			if sample.Has(a) {
				n++
			}
		}
		tiles[i] = Tile{
			Mine:          sample.Has(i),
			AdjacentMines: n,
			AdjacentTiles: adj,
		}
	}
	return &Board{
		rows:    rows,
		columns: columns,
		mines:   mines,
		tiles:   tiles,
		exposed: mapset.New[int](),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// Mines returns the number of mines on the board.
func (b *Board) Mines() int { return b.mines }

// FlaggedCount returns the number of flags currently placed.
func (b *Board) FlaggedCount() int { return b.flagged }

// CorrectlyFlaggedMines returns how many times a flag was placed on a mine.
func (b *Board) CorrectlyFlaggedMines() int { return b.correctlyFlagged }

// ExposedCount returns the number of indices visited by flood reveal.
func (b *Board) ExposedCount() int { return b.exposed.Size() }

// AvailableFlags returns how many more flags may be placed.
func (b *Board) AvailableFlags() int { return b.mines - b.flagged }

// Won reports whether every tile has been revealed or correctly flagged.
func (b *Board) Won() bool {
	return b.exposed.Size()+b.correctlyFlagged == b.rows*b.columns
}

// InBounds reports whether (row, column) lies on the board.
func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// Tile returns a copy of the tile at (row, column). The adjacency list is
// cloned, so callers cannot alter the board through it.
func (b *Board) Tile(row, column int) (Tile, error) {
	t, err := b.at(row, column)
	if err != nil {
		return Tile{}, err
	}
	c := *t
	c.AdjacentTiles = slices.Clone(t.AdjacentTiles)
	return c, nil
}

func (b *Board) at(row, column int) (*Tile, error) {
	if !b.InBounds(row, column) {
		return nil, fmt.Errorf("(%d,%d) on %dx%d board: %w", row, column, b.rows, b.columns, ErrOutOfRange)
	}
	return &b.tiles[IndexFromCoord(row, column, b.columns)], nil
}

// Expose reveals the tile at (row, column) and reports whether it was a mine.
//
// A mine is marked exposed and nothing else changes. Otherwise a
// breadth-first reveal starts at the tile: every visited index is recorded,
// and tiles without adjacent mines enqueue all of their neighbours. Flagged
// tiles are recorded but keep Exposed false so the flag stays visible.
func (b *Board) Expose(row, column int) (bool, error) {
	t, err := b.at(row, column)
	if err != nil {
		return false, err
	}
	if t.Mine {
		t.Exposed = true
		return true, nil
	}

	var queue deque.Deque[int]
	queue.PushBack(IndexFromCoord(row, column, b.columns))
	for queue.Len() > 0 {
		i := queue.PopFront()
		if b.exposed.Has(i) {
			continue
		}
		b.exposed.Put(i)

		tile := &b.tiles[i]
		tile.Exposed = !(tile.Mine || tile.Flagged)
		if tile.AdjacentMines == 0 {
			for _, a := range tile.AdjacentTiles {
				queue.PushBack(a)
			}
		}
	}
	return false, nil
}

// ExposeAll exposes every tile in index order.
func (b *Board) ExposeAll() {
	for i := range b.tiles {
		row, column := CoordFromIndex(i, b.columns)
		// Coordinates come from the board itself.
		_, _ = b.Expose(row, column)
	}
}

// Flag toggles the flag on (row, column).
//
// Removing a flag always succeeds. Placing one requires a free flag and an
// unexposed tile; otherwise the call is a no-op. Placing a flag on a mine
// bumps the correct-flag counter, which is never decremented.
func (b *Board) Flag(row, column int) error {
	t, err := b.at(row, column)
	if err != nil {
		return err
	}

	placing := !t.Flagged
	if placing && t.Mine {
		b.correctlyFlagged++
	}

	switch {
	case !placing:
		b.flagged = max(b.flagged-1, 0)
		t.Flagged = false
	case b.flagged < b.mines && !t.Exposed:
		t.Flagged = true
		b.flagged++
	}
	return nil
}
