package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"emoji-minesweeper/internal/config"
	"emoji-minesweeper/internal/game"
	"emoji-minesweeper/internal/logging"

	"github.com/spf13/pflag"
)

func main() {
	cfg := config.Default()
	defaultLog := defaultLogFile(os.Stderr)

	fs := pflag.NewFlagSet("emoji-minesweeper", pflag.ExitOnError)
	config.RegisterFlags(fs, &cfg)
	logFile := fs.String("log-file", defaultLog, "Log file path (empty disables logging)")
	jsonLogs := fs.Bool("log-json", false, "Write JSON logs instead of text")
	debug := fs.Bool("debug", false, "Log at debug level")
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := logging.Options{JSON: *jsonLogs}
	if *debug {
		opts.Level = slog.LevelDebug
	}
	log, closer, err := logging.OpenFile(*logFile, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	g, err := game.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}

// defaultLogFile returns the default log path, or "" with a warning on w
// when no state directory can be found. An empty path disables logging.
func defaultLogFile(w io.Writer) string {
	path, err := logging.DefaultFile()
	if err != nil {
		fmt.Fprintf(w, "warning: logging disabled, no default log path: %v\n", err)
		return ""
	}
	return path
}
