package board

// Tile holds the state of one minefield cell.
// Mine, AdjacentMines and AdjacentTiles are fixed at construction.
type Tile struct {
	Mine          bool
	AdjacentMines int
	AdjacentTiles []int // flat indices, ascending, no duplicates
	Exposed       bool
	Flagged       bool
}
