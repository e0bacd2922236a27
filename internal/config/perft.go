package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PerftConfig holds settings for move-generator node counting.
type PerftConfig struct {
	// Workers is the number of goroutines splitting the root moves.
	Workers int

	// UseCache enables the Zobrist-keyed transposition cache.
	UseCache bool

	// CacheSize bounds the number of cached (position, depth) entries.
	// 0 means unbounded.
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   runtime.NumCPU(),
		UseCache:  false,
		CacheSize: 1 << 20,
	}
}

// Validate checks that the perft configuration is usable.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache size (%d) is negative: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
