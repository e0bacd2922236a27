// Package perft counts the leaf nodes of the legal move tree. The counts
// are compared against published values to verify the move generator.
package perft

import (
	"context"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Cache stores node counts keyed by position hash and remaining depth.
// It must be safe for concurrent use when shared by Divide's workers.
type Cache interface {
	Get(hash uint64, depth int) (uint64, bool)
	Put(hash uint64, depth int, nodes uint64)
}

// Count returns the number of leaf nodes depth plies below board.
// Depth 0 counts the board itself.
func Count(board *chess.Board, depth int) uint64 {
	return count(board, depth, nil)
}

// CountCached is Count with a transposition cache.
func CountCached(board *chess.Board, depth int, cache Cache) uint64 {
	return count(board, depth, cache)
}

func count(board *chess.Board, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}

	var key uint64
	if cache != nil {
		key = hashing.Zobrist(board)
		if nodes, ok := cache.Get(key, depth); ok {
			return nodes
		}
	}

	moves := engine.LegalMoves(board, board.ToMove)
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			scratch := *board
			engine.MakeMove(&scratch, m)
			nodes += count(&scratch, depth-1, cache)
		}
	}

	if cache != nil {
		cache.Put(key, depth, nodes)
	}
	return nodes
}

// Divide returns the node count below each legal root move, in generation
// order. Root moves are counted in parallel on cfg.Perft.Workers goroutines,
// and cancelling ctx abandons the remaining root moves.
func Divide(ctx context.Context, board *chess.Board, depth int, cfg *config.Config) ([]Entry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Perft.Validate(); err != nil {
		return nil, err
	}

	var cache Cache
	var shared *hashing.ThreadSafePerftCache
	if cfg.Perft.UseCache {
		shared = hashing.NewThreadSafePerftCache(cfg.Perft.CacheSize)
		cache = shared
	}

	moves := engine.LegalMoves(board, board.ToMove)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		child := *board
		engine.MakeMove(&child, m)
		items[i] = worker.WorkItem{Index: i, Board: child, Move: m, Depth: depth - 1}
	}

	start := time.Now()
	results, err := worker.Run(ctx, items, func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: count(&item.Board, item.Depth, cache),
		}
	}, worker.WithWorkers(cfg.Perft.Workers), worker.WithBufferSize(len(items)))
	if err != nil {
		return nil, errors.Wrap(err, "perft divide")
	}

	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{Move: r.Move, Nodes: r.Nodes}
	}

	logger := cfg.Logger()
	logger.Debug("perft divide",
		"depth", depth,
		"moves", len(entries),
		"nodes", Total(entries),
		"workers", cfg.Perft.Workers,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if shared != nil {
		hits, misses := shared.Stats()
		logger.Debug("perft cache", "entries", shared.Len(), "full", shared.IsFull(), "hits", hits, "misses", misses)
	}

	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	return nodes
}
