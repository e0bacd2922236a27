// Package search picks moves with fixed-depth minimax and alpha-beta
// pruning over the engine's legal move generator and the static evaluator.
//
// Scores are always from White's perspective: White maximises, Black
// minimises. A checkmate scores ±(MateScore + remaining depth), so a mate
// found closer to the root outranks a deeper one.
package search

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/eval"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// MateScore is the base magnitude of a checkmate score. It is far above
// any material evaluation.
const MateScore = 100000

const infinity = math.MaxInt32

// Result is the outcome of a search from one root position.
type Result struct {
	Move  chess.Move
	Score int // White's perspective, centipawns or mate score
	Depth int
	Nodes uint64
}

// RatedMove is one root move with its independently searched score.
type RatedMove struct {
	Move  chess.Move
	Score int
}

// Searcher runs searches with a fixed configuration. It holds no position
// state, so one Searcher may serve concurrent callers.
type Searcher struct {
	cfg    *config.Config
	logger *slog.Logger
	nodes  atomic.Uint64 // Total over the Searcher's lifetime
}

// New creates a Searcher. A nil cfg uses the defaults.
func New(cfg *config.Config) *Searcher {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Searcher{cfg: cfg, logger: cfg.Logger()}
}

// Nodes returns the number of positions visited by all searches so far.
func (s *Searcher) Nodes() uint64 {
	return s.nodes.Load()
}

// BestMove searches depth plies and returns the best move for the side to
// move. Among equally scored moves the first in generation order wins.
func (s *Searcher) BestMove(board *chess.Board, depth int) (Result, error) {
	moves, err := s.rootMoves(board, depth)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	var nodes atomic.Uint64
	maximizing := board.ToMove == chess.White
	alpha, beta := -infinity, infinity

	best := Result{Move: moves[0], Depth: depth}
	for i, m := range moves {
		scratch := *board
		engine.MakeMove(&scratch, m)
		score := s.minimax(&scratch, depth-1, alpha, beta, &nodes)

		if i == 0 || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best.Move = m
			best.Score = score
		}
		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}
	}

	best.Nodes = nodes.Load()
	s.logResult("best move", best, time.Since(start))
	return best, nil
}

// WorstMove returns the move that scores worst for the side to move, each
// root move rated with a full window. Ties go to the first generated move.
func (s *Searcher) WorstMove(board *chess.Board, depth int) (Result, error) {
	rated, nodes, err := s.rate(context.Background(), board, depth)
	if err != nil {
		return Result{}, err
	}

	worst := rated[0]
	for _, r := range rated[1:] {
		if (board.ToMove == chess.White && r.Score < worst.Score) ||
			(board.ToMove == chess.Black && r.Score > worst.Score) {
			worst = r
		}
	}
	return Result{Move: worst.Move, Score: worst.Score, Depth: depth, Nodes: nodes}, nil
}

// RateMoves scores every legal root move independently, in generation
// order. Root moves are searched in parallel on cfg.Search.Workers
// goroutines; each owns its board copy and its own alpha-beta window.
func (s *Searcher) RateMoves(ctx context.Context, board *chess.Board, depth int) ([]RatedMove, error) {
	rated, _, err := s.rate(ctx, board, depth)
	return rated, err
}

func (s *Searcher) rate(ctx context.Context, board *chess.Board, depth int) ([]RatedMove, uint64, error) {
	moves, err := s.rootMoves(board, depth)
	if err != nil {
		return nil, 0, err
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		child := *board
		engine.MakeMove(&child, m)
		items[i] = worker.WorkItem{Index: i, Board: child, Move: m, Depth: depth - 1}
	}

	start := time.Now()
	var nodes atomic.Uint64
	results, err := worker.Run(ctx, items, func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Score: s.minimax(&item.Board, item.Depth, -infinity, infinity, &nodes),
		}
	}, worker.WithWorkers(s.cfg.Search.Workers), worker.WithBufferSize(len(items)))
	if err != nil {
		return nil, 0, errors.Wrap(err, "rate moves")
	}

	rated := make([]RatedMove, len(results))
	for i, r := range results {
		rated[i] = RatedMove{Move: r.Move, Score: r.Score}
	}

	s.logger.Debug("rate moves",
		"depth", depth,
		"moves", len(rated),
		"nodes", nodes.Load(),
		"workers", s.cfg.Search.Workers,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return rated, nodes.Load(), nil
}

// rootMoves validates the request and returns the legal root moves.
func (s *Searcher) rootMoves(board *chess.Board, depth int) ([]chess.Move, error) {
	if err := config.ValidateDepth(depth); err != nil {
		return nil, errors.Wrap(err, "search")
	}
	moves := engine.LegalMoves(board, board.ToMove)
	if len(moves) == 0 {
		return nil, errors.Wrapf(errors.ErrTerminalPosition, "search %s", engine.Classify(board))
	}
	return moves, nil
}

func (s *Searcher) minimax(board *chess.Board, depth, alpha, beta int, nodes *atomic.Uint64) int {
	nodes.Add(1)
	s.nodes.Add(1)

	if depth <= 0 {
		if !engine.HasLegalMoves(board, board.ToMove) {
			return terminalScore(board, 0)
		}
		return eval.Evaluate(board)
	}

	moves := engine.LegalMoves(board, board.ToMove)
	if len(moves) == 0 {
		return terminalScore(board, depth)
	}

	if board.ToMove == chess.White {
		best := -infinity
		for _, m := range moves {
			scratch := *board
			engine.MakeMove(&scratch, m)
			best = max(best, s.minimax(&scratch, depth-1, alpha, beta, nodes))
			alpha = max(alpha, best)
			if alpha >= beta {
				break // Cutoff
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		scratch := *board
		engine.MakeMove(&scratch, m)
		best = min(best, s.minimax(&scratch, depth-1, alpha, beta, nodes))
		beta = min(beta, best)
		if alpha >= beta {
			break // Cutoff
		}
	}
	return best
}

// terminalScore scores a board whose side to move has no legal moves.
func terminalScore(board *chess.Board, depth int) int {
	if !engine.IsInCheck(board, board.ToMove) {
		return 0
	}
	if board.ToMove == chess.White {
		return -(MateScore + depth)
	}
	return MateScore + depth
}

func (s *Searcher) logResult(msg string, r Result, elapsed time.Duration) {
	s.logger.Debug(msg,
		"depth", r.Depth,
		"nodes", r.Nodes,
		"move", r.Move.String(),
		"score", FormatScore(r.Score, r.Depth),
		"elapsed", elapsed.Round(time.Millisecond),
	)
}
