// Package render draws a minesweeper session onto a tcell screen.
package render

import (
	"emoji-minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Title is shown in the top border of the screen.
const Title = "Minesweeper"

// Renderer draws the minefield and HUD onto a tcell screen.
type Renderer struct {
	screen     tcell.Screen
	cellWidth  int
	cellHeight int
}

// NewRenderer creates a Renderer drawing tiles of cellW x cellH terminal cells.
func NewRenderer(screen tcell.Screen, cellW, cellH int) *Renderer {
	return &Renderer{screen: screen, cellWidth: cellW, cellHeight: cellH}
}

// Layout returns the grid placement for the current screen size.
func (r *Renderer) Layout(s *session.Session) Layout {
	w, h := r.screen.Size()
	b := s.Board()
	return NewLayout(w, h, b.Rows(), b.Columns(), r.cellWidth, r.cellHeight)
}

// DrawFrame renders the whole UI and shows it.
func (r *Renderer) DrawFrame(s *session.Session) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.drawBox(0, 0, w, h, roundedBox, styleFrame)
	r.drawText(2, 0, w-2, " "+Title+" ", styleTitle)

	l := r.Layout(s)
	r.drawInfo(l, s)
	r.drawGrid(l, s)
	r.drawHelp(l)
	if s.Over() {
		r.drawBanner(l, s.Lost())
	}
	r.screen.Show()
}

// drawGrid renders the border around the minefield and every tile inside it.
func (r *Renderer) drawGrid(l Layout, s *session.Session) {
	r.drawBox(l.X, l.Y, l.Width, l.Height, roundedBox, styleFrame)
	b := s.Board()
	for row := 0; row < b.Rows(); row++ {
		for column := 0; column < b.Columns(); column++ {
			x, y := l.CellOrigin(row, column)
			r.drawCell(l, x, y, s.Cell(row, column), s.Lost())
		}
	}
}

// drawCell renders one tile: a rounded border, a filled interior and the
// tile glyph centred on its text row.
func (r *Renderer) drawCell(l Layout, x, y int, c session.Cell, lost bool) {
	r.drawBox(x, y, l.CellWidth, l.CellHeight, roundedBox, cellBorderStyle(c, lost))

	text := cellTextStyle(c)
	innerW := l.CellWidth - 2
	for dy := 1; dy < l.CellHeight-1; dy++ {
		for dx := 1; dx <= innerW; dx++ {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, text)
		}
	}

	// A glyph wider than the interior is dropped rather than drawn over the border.
	glyph := runewidth.Truncate(c.Glyph(), innerW, "")
	if glyph == "" {
		return
	}
	gx := x + 1 + max((innerW-runewidth.StringWidth(glyph))/2, 0)
	r.putGlyph(gx, y+l.TextRow(), glyph, text)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
}
