package session

import "strconv"

// Glyphs drawn for revealed mines and placed flags. Both are two columns wide.
const (
	GlyphMine = "💣" // revealed mine
	GlyphFlag = "🚩" // placed flag
)

// Cell is a read-only snapshot of one tile as the renderer sees it.
type Cell struct {
	Active        bool
	Exposed       bool
	Flagged       bool
	Mine          bool
	AdjacentMines int
}

// Glyph returns the text shown inside the cell: a flag, a detonated mine,
// the adjacent mine count, or nothing.
func (c Cell) Glyph() string {
	switch {
	case c.Flagged:
		return GlyphFlag
	case c.Mine && c.Exposed:
		return GlyphMine
	case c.Exposed && c.AdjacentMines > 0:
		return strconv.Itoa(c.AdjacentMines)
	}
	return ""
}
