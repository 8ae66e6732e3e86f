package render

import (
	"emoji-minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
)

// boxChars holds the runes used to draw a rectangular border.
type boxChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	roundedBox = boxChars{'╭', '╮', '╰', '╯', '─', '│'}
	thickBox   = boxChars{'┏', '┓', '┗', '┛', '━', '┃'}
)

var (
	styleTitle      = tcell.StyleDefault.Foreground(tcell.ColorLightYellow).Bold(true)
	styleFrame      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGaugeEmpty = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack).Bold(true)
	styleGaugeFull  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorFuchsia).Bold(true)
	styleMineBox    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow).Bold(true)
)

// cellBorderStyle returns the border style of a tile. The cursor wins over
// everything; after a loss, mines are outlined in red.
func cellBorderStyle(c session.Cell, lost bool) tcell.Style {
	fg := tcell.ColorWhite
	switch {
	case c.Active:
		fg = tcell.ColorAqua
	case lost && c.Mine:
		fg = tcell.ColorRed
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack).Bold(c.Active)
}

// cellTextStyle returns the style of a tile's interior. Hidden tiles are
// filled white (cyan under the cursor), exposed ones black.
func cellTextStyle(c session.Cell) tcell.Style {
	fg := tcell.ColorBlack
	switch {
	case c.Exposed && c.Mine:
		fg = tcell.ColorLightYellow
	case c.Exposed:
		fg = tcell.ColorWhite
	}

	bg := tcell.ColorWhite
	switch {
	case c.Exposed:
		bg = tcell.ColorBlack
	case c.Active:
		bg = tcell.ColorAqua
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// bannerStyle returns the border style of the end-of-game banner.
func bannerStyle(lost bool) tcell.Style {
	if lost {
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
}
