// Package game runs the interactive loop: it polls tcell for key events,
// applies them to a session and redraws.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"emoji-minesweeper/internal/board"
	"emoji-minesweeper/internal/config"
	"emoji-minesweeper/internal/render"
	"emoji-minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Game is the top-level orchestrator for one player and one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *session.Session
	log      *slog.Logger
	started  time.Time
}

// New creates a Game on the process terminal.
func New(cfg config.Config, log *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game on an already initialised screen.
// The Game takes ownership of the screen and finalises it when Run returns.
func NewWithScreen(screen tcell.Screen, cfg config.Config, log *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b, err := board.New(cfg.Rows, cfg.Columns, cfg.Mines, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	log.Info("new game",
		"rows", cfg.Rows,
		"columns", cfg.Columns,
		"mines", cfg.Mines,
		"seed", seed)

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.CellWidth, cfg.CellHeight),
		session:  session.New(b, log),
		log:      log,
	}, nil
}

// Session returns the game's session.
func (g *Game) Session() *session.Session { return g.session }

// Run is the main loop. It redraws, waits for one event and applies it,
// until the player quits or the screen is closed.
func (g *Game) Run() {
	defer g.screen.Fini()
	g.started = time.Now()

	for {
		g.renderer.DrawFrame(g.session)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			g.log.Debug("screen closed")
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if !g.processCommand(keyToCommand(ev)) {
				return
			}
		}
	}
}

// processCommand applies one command and reports whether the loop continues.
func (g *Game) processCommand(cmd session.Command) bool {
	if cmd == session.CmdNone {
		return true
	}
	wasOver := g.session.Over()
	if !g.session.Apply(cmd) {
		g.log.Info("quit",
			"lost", g.session.Lost(),
			"won", g.session.Won(),
			"elapsed", time.Since(g.started).Round(time.Second))
		return false
	}
	if !wasOver && g.session.Over() {
		g.log.Info("game over",
			"lost", g.session.Lost(),
			"elapsed", time.Since(g.started).Round(time.Second))
	}
	return true
}
