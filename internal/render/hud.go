package render

import (
	"math"
	"strconv"

	"emoji-minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HelpLines lists the key bindings shown under the grid.
var HelpLines = []string{
	"movement: hjkl / ← ↓ ↑ →",
	"expose tile: spacebar",
	"flag tile: f",
	"quit: q",
}

const (
	bannerWidth  = 20
	bannerHeight = 3
)

// drawInfo renders the flag gauge and the mine counter above the grid.
func (r *Renderer) drawInfo(l Layout, s *session.Session) {
	b := s.Board()
	y := l.Y - infoHeight
	left := l.Width / 2
	r.drawGauge(l.X, y, left, b.AvailableFlags(), b.Mines())

	x := l.X + left
	w := l.Width - left
	r.drawBox(x, y, w, infoHeight, roundedBox, styleMineBox)
	r.drawText(x+1, y, x+w-1, session.GlyphMine, styleMineBox)
	r.drawCentered(x+1, y+1, w-2, strconv.Itoa(b.Mines()), styleMineBox)
}

// drawGauge renders a bordered bar filled in proportion to available/total,
// labelled with the available count.
func (r *Renderer) drawGauge(x, y, w, available, total int) {
	r.drawBox(x, y, w, infoHeight, roundedBox, styleGaugeEmpty)
	r.drawText(x+1, y, x+w-1, session.GlyphFlag, styleGaugeEmpty)

	inner := w - 2
	if inner <= 0 {
		return
	}
	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(inner) * float64(available) / float64(total)))
	}
	for dx := 0; dx < inner; dx++ {
		st := styleGaugeEmpty
		if dx < filled {
			st = styleGaugeFull
		}
		r.screen.SetContent(x+1+dx, y+1, ' ', nil, st)
	}

	label := strconv.Itoa(available)
	lx := x + 1 + max((inner-len(label))/2, 0)
	for i, ch := range label {
		st := styleGaugeEmpty
		if lx+i-x-1 < filled {
			st = styleGaugeFull
		}
		r.screen.SetContent(lx+i, y+1, ch, nil, st)
	}
}

// drawHelp lists the key bindings below the grid.
func (r *Renderer) drawHelp(l Layout) {
	w, h := r.screen.Size()
	y := l.Y + l.Height + 1
	for i, line := range HelpLines {
		if y+i >= h-1 {
			return
		}
		r.drawText(l.X, y+i, w-1, line, styleHelp)
	}
}

// drawBanner overlays the win/lose message on the centre of the grid.
func (r *Renderer) drawBanner(l Layout, lost bool) {
	msg := "You won"
	if lost {
		msg = "You lose"
	}
	x, y := l.Centered(bannerWidth, bannerHeight)
	st := bannerStyle(lost)
	for dx := 1; dx < bannerWidth-1; dx++ {
		r.screen.SetContent(x+dx, y+1, ' ', nil, tcell.StyleDefault)
	}
	r.drawBox(x, y, bannerWidth, bannerHeight, thickBox, st)
	r.drawCentered(x+1, y+1, bannerWidth-2, msg, tcell.StyleDefault.Bold(true))
}

// drawBox outlines a w x h rectangle with its top-left corner at (x, y).
func (r *Renderer) drawBox(x, y, w, h int, bc boxChars, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for cx := x + 1; cx < right; cx++ {
		r.screen.SetContent(cx, y, bc.Horizontal, nil, style)
		r.screen.SetContent(cx, bottom, bc.Horizontal, nil, style)
	}
	for cy := y + 1; cy < bottom; cy++ {
		r.screen.SetContent(x, cy, bc.Vertical, nil, style)
		r.screen.SetContent(right, cy, bc.Vertical, nil, style)
	}
	r.screen.SetContent(x, y, bc.TopLeft, nil, style)
	r.screen.SetContent(right, y, bc.TopRight, nil, style)
	r.screen.SetContent(x, bottom, bc.BottomLeft, nil, style)
	r.screen.SetContent(right, bottom, bc.BottomRight, nil, style)
}

// drawText writes text from (x, y), advancing by each rune's display width
// and stopping before column maxX.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if col+cw > maxX {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
}

// drawCentered writes text centred in a w-column span starting at x.
func (r *Renderer) drawCentered(x, y, w int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, w, "")
	r.drawText(x+(w-runewidth.StringWidth(text))/2, y, x+w, text, style)
}
