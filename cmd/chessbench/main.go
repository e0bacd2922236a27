// Command chessbench exercises the engine from the command line: perft
// node counts, per-move divides, best-move search and move rating.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessbench version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chessbench: %v\n", err)
		os.Exit(2)
	}

	m, err := selectedMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessbench: %v\n", err)
		os.Exit(2)
	}
	notationName, err := selectedNotation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessbench: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := cfg.Logger()
	pos, err := setupBoard(*fenFlag, *movesFlag)
	if err != nil {
		logger.Error("bad position", "err", err)
		os.Exit(1)
	}

	b := &bench{cfg: cfg, out: cfg.Output, notation: notationName}
	b.describe(pos)
	board := pos.board

	switch m {
	case modeDivide:
		err = b.divide(ctx, board, *depth)
	case modeSearch:
		err = b.search(board, *depth)
	case modeRate:
		err = b.rate(ctx, board, *depth)
	default:
		err = b.perft(ctx, board, *depth)
	}
	if err != nil {
		logger.Error("chessbench failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessbench [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts, divides and searches chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessbench -depth 5\n")
	fmt.Fprintf(os.Stderr, "  chessbench -divide -depth 3 -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\"\n")
	fmt.Fprintf(os.Stderr, "  chessbench -search -depth 4 -moves \"e4 e5 Nf3\" -notation san\n")
}
