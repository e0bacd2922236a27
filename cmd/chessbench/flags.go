// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

var (
	// Position
	fenFlag   = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	movesFlag = flag.String("moves", "", "UCI or SAN moves to play from the starting position (e.g. \"e2e4 e5 Nf3\")")

	// Modes (perft is the default)
	depth        = flag.Int("depth", 3, "Depth in plies")
	divideMode   = flag.Bool("divide", false, "Print the node count below each root move")
	searchMode   = flag.Bool("search", false, "Search for the best move")
	rateMode     = flag.Bool("rate", false, "Rate every root move")
	moveNotation = flag.String("notation", notationUCI, "Move notation for output: uci|san|lan")

	// Performance options
	workers   = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	useCache  = flag.Bool("cache", false, "Cache perft node counts by position")
	cacheSize = flag.Int("cache-size", 1<<20, "Maximum perft cache entries (0 = unlimited)")

	// Logging
	logLevel = flag.String("log-level", "info", "debug|info|warn|error")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// mode is the action selected on the command line.
type mode int

const (
	modePerft mode = iota
	modeDivide
	modeSearch
	modeRate
)

// selectedMode returns the action requested by the flags. At most one of
// -divide, -search and -rate may be set.
func selectedMode() (mode, error) {
	selected := modePerft
	count := 0
	if *divideMode {
		selected = modeDivide
		count++
	}
	if *searchMode {
		selected = modeSearch
		count++
	}
	if *rateMode {
		selected = modeRate
		count++
	}
	if count > 1 {
		return modePerft, fmt.Errorf("choose at most one of -divide, -search, -rate")
	}
	return selected, nil
}

// selectedNotation validates -notation.
func selectedNotation() (string, error) {
	switch *moveNotation {
	case notationUCI, notationSAN, notationLong:
		return *moveNotation, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidConfig, "unknown notation %q", *moveNotation)
}

// applyFlags copies flag values into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	cfg.Log.Level = level
	cfg.Log.Writer = os.Stderr

	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	cfg.Search.Workers = n
	cfg.Search.Depth = *depth
	cfg.Perft.Workers = n
	cfg.Perft.UseCache = *useCache
	cfg.Perft.CacheSize = *cacheSize

	return cfg.Validate()
}
