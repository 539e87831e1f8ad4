// Package logging sets up the slog logger used by the speller command.
// The dictionary package itself never logs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is json, text, or auto (text on a terminal, json otherwise).
	Format string
	// FilePath is the path to a log file. Empty means no file logging.
	FilePath string
	// WriteToStderr whether to also write to stderr.
	WriteToStderr bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:         "warn",
		Format:        "auto",
		WriteToStderr: true,
	}
}

// Setup builds a logger from cfg. The returned cleanup function closes the
// log file, if any, and must be called once logging is done.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	cleanup := func() {}

	var writers []io.Writer
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, f)
		cleanup = func() {
			_ = f.Sync()
			_ = f.Close()
		}
	}
	if cfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	var output io.Writer
	switch len(writers) {
	case 0:
		output = io.Discard
	case 1:
		output = writers[0]
	default:
		output = io.MultiWriter(writers...)
	}

	return New(output, cfg.Level, resolveFormat(cfg)), cleanup, nil
}

// New creates a logger writing to w in the given format (json or text).
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// resolveFormat turns auto into text when only a terminal is written to.
func resolveFormat(cfg Config) string {
	format := strings.ToLower(cfg.Format)
	if format != "auto" && format != "" {
		return format
	}
	if cfg.FilePath == "" && cfg.WriteToStderr && isatty.IsTerminal(os.Stderr.Fd()) {
		return "text"
	}
	return "json"
}

// ParseLevel converts a level name to slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
