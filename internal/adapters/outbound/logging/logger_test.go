package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confguard/confguard/internal/adapters/outbound/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_StructuredTimestampedLines(t *testing.T) {
	buf := new(bytes.Buffer)
	log := logging.New(buf, "info")

	log.Info("configuration file loaded", "file", "config.json")

	line := buf.String()
	assert.Contains(t, line, "time=")
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "configuration file loaded")
	assert.Contains(t, line, "file=config.json")
}

func TestNew_LevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	log := logging.New(buf, "error")

	log.Info("progress")
	log.Warn("advisory")
	assert.Empty(t, buf.String())

	log.Error("terminal")
	assert.Contains(t, buf.String(), "level=ERROR")
}
