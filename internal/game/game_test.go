package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"emoji-minesweeper/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	return ss
}

func testConfig(rows, columns, mines int) config.Config {
	c := config.Default()
	c.Rows, c.Columns, c.Mines = rows, columns, mines
	c.Seed = 42
	return c
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postRunes(t *testing.T, screen tcell.Screen, runes ...rune) {
	t.Helper()
	for _, r := range runes {
		require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
}

// runWithTimeout runs g until it returns, failing the test if it hangs.
func runWithTimeout(t *testing.T, g *Game) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	screen := newSimScreen(t)
	g, err := NewWithScreen(screen, testConfig(3, 3, 0), discard())
	require.NoError(t, err)

	postRunes(t, screen, 'j', 'l', ' ', 'q')
	runWithTimeout(t, g)

	row, column := g.Session().Active()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, column)
	assert.True(t, g.Session().Won())
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newSimScreen(t)
	g, err := NewWithScreen(screen, testConfig(4, 4, 2), discard())
	require.NoError(t, err)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	runWithTimeout(t, g)

	row, _ := g.Session().Active()
	assert.Equal(t, 1, row)
	assert.False(t, g.Session().Over())
}

func TestRunLosesOnMine(t *testing.T) {
	screen := newSimScreen(t)
	g, err := NewWithScreen(screen, testConfig(2, 2, 4), discard())
	require.NoError(t, err)

	// Every tile is a mine; flagging after the loss is ignored.
	postRunes(t, screen, ' ', 'f', 'q')
	runWithTimeout(t, g)

	assert.True(t, g.Session().Lost())
	assert.Zero(t, g.Session().Board().FlaggedCount())
}

func TestProcessCommand(t *testing.T) {
	g, err := NewWithScreen(newSimScreen(t), testConfig(3, 3, 1), discard())
	require.NoError(t, err)
	defer g.screen.Fini()

	assert.True(t, g.processCommand(keyToCommand(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))))
	assert.True(t, g.processCommand(keyToCommand(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))))
	assert.Equal(t, 1, g.Session().Board().FlaggedCount())
	assert.False(t, g.processCommand(keyToCommand(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))))
}

func TestNewWithScreenRejectsInvalidConfig(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	_, err := NewWithScreen(screen, testConfig(3, 3, 10), discard())
	assert.ErrorIs(t, err, config.ErrInvalidMines)

	c := testConfig(3, 3, 1)
	c.CellWidth = 1
	_, err = NewWithScreen(screen, c, discard())
	assert.ErrorIs(t, err, config.ErrInvalidCell)
}

func TestSeedReproducesBoard(t *testing.T) {
	a, err := NewWithScreen(newSimScreen(t), testConfig(9, 9, 10), discard())
	require.NoError(t, err)
	defer a.screen.Fini()
	b, err := NewWithScreen(newSimScreen(t), testConfig(9, 9, 10), discard())
	require.NoError(t, err)
	defer b.screen.Fini()

	for row := 0; row < 9; row++ {
		for column := 0; column < 9; column++ {
			ta, _ := a.Session().Board().Tile(row, column)
			tb, _ := b.Session().Board().Tile(row, column)
			assert.Equal(t, ta.Mine, tb.Mine, "(%d,%d)", row, column)
		}
	}
}
