package board

import "errors"

var (
	// ErrInvalidDimensions is returned when rows or columns is less than one.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrInvalidMineCount is returned when the mine count is negative or
	// larger than the number of tiles.
	ErrInvalidMineCount = errors.New("mine count out of range")
	// ErrOutOfRange is returned for coordinates or indices outside the board.
	ErrOutOfRange = errors.New("coordinate out of range")
)
