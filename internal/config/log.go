package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is the minimum level emitted.
	Level slog.Level

	// Writer receives log records. nil discards them.
	Writer io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: slog.LevelInfo}
}

// NewLogger builds a text logger for this configuration.
func (l *LogConfig) NewLogger() *slog.Logger {
	w := l.Writer
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.Level}))
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
func ParseLevel(text string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", text, errors.ErrInvalidConfig)
}
