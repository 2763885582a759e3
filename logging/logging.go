// Package logging builds the slog loggers used across tweentx.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a logger writing to stderr in "text" or "json" format.
func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to w.
func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Bridge returns a *log.Logger that writes through logger at level, tagged
// with the given component. It is used for libraries that log through the
// standard log package.
func Bridge(logger *slog.Logger, component string, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.With("component", component).Handler(), level)
}
