package ssh

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession implements the parts of gossh.Session the tty touches.
type fakeSession struct {
	gossh.Session
	in     *bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (f *fakeSession) Read(b []byte) (int, error)  { return f.in.Read(b) }
func (f *fakeSession) Write(b []byte) (int, error) { return f.out.Write(b) }
func (f *fakeSession) Close() error                { f.closed = true; return nil }

var _ tcell.Tty = (*SessionTty)(nil)

func TestSessionTtyReadWriteClose(t *testing.T) {
	fs := &fakeSession{in: bytes.NewBufferString("q")}
	tty := NewSessionTty(fs, gossh.Pty{}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "q", string(buf[:n]))

	_, err = tty.Write([]byte("frame"))
	require.NoError(t, err)
	assert.Equal(t, "frame", fs.out.String())

	require.NoError(t, tty.Close())
	assert.True(t, fs.closed)
}

func TestSessionTtyWindowSize(t *testing.T) {
	pty := gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}
	tty := NewSessionTty(&fakeSession{}, pty, nil)

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, 80, ws.Width)
	assert.Equal(t, 24, ws.Height)
}

func TestSessionTtyZeroWindowFallsBack(t *testing.T) {
	tty := NewSessionTty(&fakeSession{}, gossh.Pty{}, nil)

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, fallbackWidth, ws.Width)
	assert.Equal(t, fallbackHeight, ws.Height)
}

func TestSessionTtyResizeFillsZeroDimension(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(&fakeSession{}, gossh.Pty{Window: gossh.Window{Width: 100, Height: 30}}, winCh)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })

	winCh <- gossh.Window{Width: 0, Height: 50}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, fallbackWidth, ws.Width)
	assert.Equal(t, 50, ws.Height)
	close(winCh)
}

func TestSessionTtyNotifyResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(&fakeSession{}, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	// A second registration replaces the callback without a second watcher.
	tty.NotifyResize(func() { resized <- struct{}{} })

	winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}

	ws, err := tty.WindowSize()
	require.NoError(t, err)
	assert.Equal(t, 120, ws.Width)
	assert.Equal(t, 40, ws.Height)
	close(winCh)
}
