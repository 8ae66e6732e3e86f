// Package session tracks one game in progress: the board, the player's
// cursor and whether the game has been lost.
package session

import (
	"log/slog"

	"emoji-minesweeper/internal/board"
)

// Session owns a board and the cursor moving over it.
// It is not safe for concurrent use.
type Session struct {
	board       *board.Board
	row, column int
	lost        bool
	won         bool // latched so the win is logged once
	log         *slog.Logger
}

// New starts a session on b with the cursor at (0, 0).
// A nil logger falls back to slog.Default().
func New(b *board.Board, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{board: b, log: log}
}

// Board returns the underlying board.
func (s *Session) Board() *board.Board { return s.board }

// Active returns the cursor position.
func (s *Session) Active() (row, column int) { return s.row, s.column }

// Lost reports whether a mine has been exposed.
func (s *Session) Lost() bool { return s.lost }

// Won reports whether the board has been cleared.
func (s *Session) Won() bool { return s.board.Won() }

// Over reports whether the game has ended either way.
func (s *Session) Over() bool { return s.lost || s.Won() }

// MoveUp moves the cursor one row up, stopping at the top edge.
func (s *Session) MoveUp() { s.row = max(s.row-1, 0) }

// MoveDown moves the cursor one row down, stopping at the bottom edge.
func (s *Session) MoveDown() { s.row = min(s.row+1, s.board.Rows()-1) }

// MoveLeft moves the cursor one column left, stopping at the left edge.
func (s *Session) MoveLeft() { s.column = max(s.column-1, 0) }

// MoveRight moves the cursor one column right, stopping at the right edge.
func (s *Session) MoveRight() { s.column = min(s.column+1, s.board.Columns()-1) }

// FlagActive toggles the flag under the cursor. Ignored once the game is over.
func (s *Session) FlagActive() {
	if s.Over() {
		return
	}
	if err := s.board.Flag(s.row, s.column); err != nil {
		s.log.Error("flag failed", "row", s.row, "column", s.column, "error", err)
		return
	}
	s.checkWon()
}

// ExposeActive exposes the tile under the cursor and reports whether it was
// a mine. Hitting a mine loses the game and reveals the whole board.
// Ignored once the game is over.
func (s *Session) ExposeActive() bool {
	if s.Over() {
		return false
	}
	hit, err := s.board.Expose(s.row, s.column)
	if err != nil {
		s.log.Error("expose failed", "row", s.row, "column", s.column, "error", err)
		return false
	}
	if hit {
		s.lost = true
		s.board.ExposeAll()
		s.log.Info("game lost", "row", s.row, "column", s.column)
		return true
	}
	s.checkWon()
	return false
}

func (s *Session) checkWon() {
	if !s.won && s.board.Won() {
		s.won = true
		s.log.Info("game won",
			"rows", s.board.Rows(),
			"columns", s.board.Columns(),
			"mines", s.board.Mines())
	}
}

// Apply dispatches one command. It returns false when the player asked to quit.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CmdMoveUp:
		s.MoveUp()
	case CmdMoveDown:
		s.MoveDown()
	case CmdMoveLeft:
		s.MoveLeft()
	case CmdMoveRight:
		s.MoveRight()
	case CmdToggleFlag:
		s.FlagActive()
	case CmdExpose:
		s.ExposeActive()
	case CmdQuit:
		return false
	}
	return true
}

// Cell returns the render view of the tile at (row, column).
func (s *Session) Cell(row, column int) Cell {
	t, err := s.board.Tile(row, column)
	if err != nil {
		return Cell{}
	}
	return Cell{
		Active:        row == s.row && column == s.column,
		Exposed:       t.Exposed,
		Flagged:       t.Flagged,
		Mine:          t.Mine,
		AdjacentMines: t.AdjacentMines,
	}
}
