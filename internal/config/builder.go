package config

import (
	"io"
	"log/slog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSearchDepth sets the default search depth.
func (b *ConfigBuilder) WithSearchDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithSearchWorkers sets the number of goroutines used when rating moves.
func (b *ConfigBuilder) WithSearchWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPerftWorkers sets the number of goroutines used by perft divide.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftCache enables the perft transposition cache with the given bound.
func (b *ConfigBuilder) WithPerftCache(enabled bool, size int) *ConfigBuilder {
	b.cfg.Perft.UseCache = enabled
	b.cfg.Perft.CacheSize = size
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level slog.Level) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogWriter sets where log records go.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Writer = w
	return b
}

// WithLogger sets a ready-made logger, overriding the Log section.
func (b *ConfigBuilder) WithLogger(logger *slog.Logger) *ConfigBuilder {
	b.cfg.SetLogger(logger)
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}
