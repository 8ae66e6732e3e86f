// Package ssh adapts gliderlabs SSH sessions to tcell terminals.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Window size used for clients that request a pty without one; some
// scripted ssh invocations report 0x0.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// SessionTty implements tcell.Tty on top of an SSH session, so each client
// gets its own tcell.Screen.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func()
	watch  sync.Once
}

// NewSessionTty wraps s. pty carries the initial window size; winCh
// delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  sanitize(pty.Window),
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel is owned by the SSH handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent client window size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run after every window change. The first
// call starts a goroutine draining the window channel until it closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchResize() })
}

func (t *SessionTty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = sanitize(win)
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// sanitize replaces a missing (non-positive) dimension with its fallback.
func sanitize(win gossh.Window) gossh.Window {
	if win.Width <= 0 {
		win.Width = fallbackWidth
	}
	if win.Height <= 0 {
		win.Height = fallbackHeight
	}
	return win
}
