// Package logging builds the structured logger used across one run. The
// logger is constructed once at process start and injected; there is no
// ambient global logging state.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a timestamped text logger writing to w at the given level.
// Unrecognised levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
