// Package logging builds the slog loggers used by the binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects where and how log records are written.
type Options struct {
	JSON    bool
	Level   slog.Level
	NoColor bool
}

// New returns a logger writing to w. Text output goes through tint.
func New(w io.Writer, opts Options) *slog.Logger {
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level:      opts.Level,
			TimeFormat: time.TimeOnly,
			NoColor:    opts.NoColor,
		})
	}
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFile opens path for appending, creating parent directories as needed,
// and returns a logger writing to it. An empty path yields Discard.
// The caller closes the returned closer.
func OpenFile(path string, opts Options) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	// Files never get ANSI colour codes.
	opts.NoColor = true
	return New(f, opts), f, nil
}

// DefaultFile returns the default log location:
// $XDG_STATE_HOME/emoji-minesweeper/game.log, falling back to
// ~/.local/state/emoji-minesweeper/game.log.
func DefaultFile() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "emoji-minesweeper", "game.log"), nil
}
