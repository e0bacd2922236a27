package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxSearchDepth bounds the requested search depth. Fixed-depth minimax is
// exponential, and past this point a single call would not finish.
const MaxSearchDepth = 12

// SearchConfig holds settings for the minimax searcher.
type SearchConfig struct {
	// Depth is the default depth in plies when a caller passes none.
	Depth int

	// Workers is the number of goroutines used for independent root moves
	// when rating moves. 1 searches sequentially.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if err := ValidateDepth(s.Depth); err != nil {
		return err
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// ValidateDepth reports whether depth is within [1, MaxSearchDepth].
func ValidateDepth(depth int) error {
	if depth < 1 || depth > MaxSearchDepth {
		return fmt.Errorf("depth %d outside [1, %d]: %w", depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}
