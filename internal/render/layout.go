package render

// gridPadding is the border drawn around the whole grid.
const gridPadding = 1

// infoHeight is the height of the flag/mine boxes above the grid.
const infoHeight = 3

// Layout places the minefield on the screen. The grid is centred, leaving
// room above it for the info boxes.
type Layout struct {
	X, Y          int // top-left corner of the grid border
	Width, Height int // grid size in terminal cells, border included
	CellWidth     int
	CellHeight    int
}

// NewLayout computes the grid position for a rows x columns board on a
// screenW x screenH screen.
func NewLayout(screenW, screenH, rows, columns, cellW, cellH int) Layout {
	w := cellW*columns + 2*gridPadding
	h := cellH*rows + 2*gridPadding
	return Layout{
		X:          max((screenW-w)/2, 0),
		Y:          max((screenH-h)/2, infoHeight+1),
		Width:      w,
		Height:     h,
		CellWidth:  cellW,
		CellHeight: cellH,
	}
}

// CellOrigin returns the screen position of the top-left corner of a tile.
func (l Layout) CellOrigin(row, column int) (x, y int) {
	return l.X + gridPadding + column*l.CellWidth, l.Y + gridPadding + row*l.CellHeight
}

// TextRow returns the row offset inside a tile where its glyph is drawn:
// below the top border, after half of the spare rows.
func (l Layout) TextRow() int {
	return 1 + (l.CellHeight-3)/2
}

// Centered returns the top-left corner of a w x h box centred on the grid.
func (l Layout) Centered(w, h int) (x, y int) {
	return l.X + (l.Width-w)/2, l.Y + (l.Height-h)/2
}
