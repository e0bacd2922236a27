// Package config provides configuration for the chess engine's search,
// perft and logging layers.
package config

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all engine configuration, grouped by concern.
type Config struct {
	Search SearchConfig
	Perft  PerftConfig
	Log    LogConfig

	// Output receives human-readable reports from the command-line tools.
	Output io.Writer

	loggerMu sync.Mutex
	logger   *slog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search: *NewSearchConfig(),
		Perft:  *NewPerftConfig(),
		Log:    *NewLogConfig(),
		Output: os.Stdout,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return errors.Wrap(err, "search")
	}
	if err := c.Perft.Validate(); err != nil {
		return errors.Wrap(err, "perft")
	}
	return nil
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Logger returns the configured logger, building it from the Log section on
// first use. Without a log writer it discards everything. Safe for
// concurrent use.
func (c *Config) Logger() *slog.Logger {
	c.loggerMu.Lock()
	defer c.loggerMu.Unlock()
	if c.logger == nil {
		c.logger = c.Log.NewLogger()
	}
	return c.logger
}

// SetLogger overrides the logger built from the Log section.
func (c *Config) SetLogger(logger *slog.Logger) {
	c.loggerMu.Lock()
	defer c.loggerMu.Unlock()
	c.logger = logger
}
