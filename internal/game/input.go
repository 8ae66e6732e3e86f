package game

import (
	"emoji-minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
)

// keyToCommand maps a tcell key event to a session command.
func keyToCommand(ev *tcell.EventKey) session.Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return session.CmdMoveUp
	case tcell.KeyDown:
		return session.CmdMoveDown
	case tcell.KeyRight:
		return session.CmdMoveRight
	case tcell.KeyLeft:
		return session.CmdMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.CmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return session.CmdMoveUp
	case 'j', 'J':
		return session.CmdMoveDown
	case 'l', 'L':
		return session.CmdMoveRight
	case 'h', 'H':
		return session.CmdMoveLeft
	case 'f', 'F':
		return session.CmdToggleFlag
	case ' ':
		return session.CmdExpose
	case 'q', 'Q':
		return session.CmdQuit
	}
	return session.CmdNone
}
