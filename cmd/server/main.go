// emoji-minesweeper-server serves a minesweeper game over SSH. Every
// connection plays its own board. Build:
//
//	go build -o emoji-minesweeper-server ./cmd/server
//
// Usage:
//
//	./emoji-minesweeper-server [--port 2222] [--key server_host_key] [--rows 16 --cols 16 --mines 40]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"emoji-minesweeper/internal/config"
	"emoji-minesweeper/internal/game"
	"emoji-minesweeper/internal/logging"
	internalssh "emoji-minesweeper/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/pflag"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg := config.Default()
	fs := pflag.NewFlagSet("emoji-minesweeper-server", pflag.ExitOnError)
	port := fs.Int("port", 2222, "SSH server port")
	keyFile := fs.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	jsonLogs := fs.Bool("log-json", false, "Write JSON logs instead of text")
	config.RegisterFlags(fs, &cfg)
	_ = fs.Parse(os.Args[1:])

	log := logging.New(os.Stderr, logging.Options{JSON: *jsonLogs})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Error("host key", "error", err)
		os.Exit(1)
	}

	h := &handler{cfg: cfg, log: log}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", "error", err)
		}
	}()

	log.Info("listening", "addr", srv.Addr, "rows", cfg.Rows, "columns", cfg.Columns, "mines", cfg.Mines)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}

// ─── sessions ───────────────────────────────────────────────────────────────

// handler starts one game per SSH session.
type handler struct {
	cfg config.Config
	log *slog.Logger
}

// allowedTerms lists the TERM values accepted from clients. Anything else
// falls back to defaultTerm so a client cannot point terminfo lookups at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// termFromEnv picks the client's TERM from its session environment.
func termFromEnv(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return defaultTerm
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	log := h.log.With("remote", s.RemoteAddr().String(), "user", s.User())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	// Create a tcell screen backed by this SSH session.
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", termFromEnv(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		log.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Warn("screen init failed", "error", err)
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	g, err := game.NewWithScreen(screen, h.cfg, log)
	if err != nil {
		screen.Fini()
		log.Error("new game", "error", err)
		return
	}
	log.Info("session started")
	g.Run()
	log.Info("session ended")
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-minesweeper server")
	if err != nil {
		log.Warn("marshal host key", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		log.Warn("save host key", "path", path, "error", err)
	}
	return signer, nil
}
