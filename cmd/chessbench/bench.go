package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/eval"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/notation"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Move notations accepted by -notation.
const (
	notationUCI  = "uci"
	notationSAN  = "san"
	notationLong = "lan"
)

// bench runs one command-line action and reports to out.
type bench struct {
	cfg      *config.Config
	out      io.Writer
	notation string
}

// position is the board to work on and the moves that led to it.
type position struct {
	start  chess.Board
	board  *chess.Board
	played []chess.Move
}

// setupBoard parses fen and plays the space-separated moves on it. Each
// move may be UCI ("g1f3") or SAN ("Nf3").
func setupBoard(fen, moves string) (*position, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	pos := &position{start: *board, board: board}
	for _, text := range strings.Fields(moves) {
		m, err := notation.ParseMove(board, text)
		if err != nil {
			m, err = notation.ParseSAN(board, text)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "after %d moves", len(pos.played))
		}
		engine.MakeMove(board, m)
		pos.played = append(pos.played, m)
	}
	return pos, nil
}

// describe prints the position summary.
func (b *bench) describe(pos *position) {
	board := pos.board
	fmt.Fprintf(b.out, "%v\n", board)
	fmt.Fprintf(b.out, "FEN:      %s\n", engine.BoardToFEN(board))
	if len(pos.played) > 0 {
		if line, err := notation.MoveList(&pos.start, pos.played); err == nil {
			fmt.Fprintf(b.out, "Moves:    %s\n", line)
		}
	}
	fmt.Fprintf(b.out, "Key:      %016x\n", hashing.Zobrist(board))
	fmt.Fprintf(b.out, "State:    %s\n", engine.Classify(board))
	fmt.Fprintf(b.out, "Eval:     %s\n", search.FormatScore(eval.Evaluate(board), 0))
	if engine.HasInsufficientMaterial(board) {
		fmt.Fprintf(b.out, "Material: insufficient to mate\n")
	}
	fmt.Fprintln(b.out)
}

// moveText renders a legal move in the selected notation, falling back to
// UCI if the move cannot be resolved on board.
func (b *bench) moveText(board *chess.Board, m chess.Move) string {
	var text string
	var err error
	switch b.notation {
	case notationSAN:
		text, err = notation.SAN(board, m)
	case notationLong:
		text, err = notation.LongAlgebraic(board, m)
	default:
		return notation.UCI(m)
	}
	if err != nil {
		return notation.UCI(m)
	}
	return text
}

// perft prints the node count at every depth up to maxDepth.
func (b *bench) perft(ctx context.Context, board *chess.Board, maxDepth int) error {
	if maxDepth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", maxDepth)
	}
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		entries, err := perft.Divide(ctx, board, d, b.cfg)
		if err != nil {
			return err
		}
		nodes := perft.Total(entries)
		elapsed := time.Since(start)
		fmt.Fprintf(b.out, "perft(%d) = %d  (%v, %s nps)\n",
			d, nodes, elapsed.Round(time.Millisecond), formatRate(nodes, elapsed))
	}
	return nil
}

// divide prints the node count below each root move.
func (b *bench) divide(ctx context.Context, board *chess.Board, d int) error {
	entries, err := perft.Divide(ctx, board, d, b.cfg)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(b.out, "%s: %d\n", b.moveText(board, e.Move), e.Nodes)
	}
	fmt.Fprintf(b.out, "\nMoves: %d\nNodes: %d\n", len(entries), perft.Total(entries))
	return nil
}

// search prints the best move and the line it starts.
func (b *bench) search(board *chess.Board, d int) error {
	start := time.Now()
	res, err := search.New(b.cfg).BestMove(board, d)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	fmt.Fprintf(b.out, "bestmove %s  score %s  depth %d  nodes %d  (%v, %s nps)\n",
		b.moveText(board, res.Move), search.FormatScore(res.Score, res.Depth),
		res.Depth, res.Nodes, elapsed.Round(time.Millisecond), formatRate(res.Nodes, elapsed))

	line, err := notation.MoveList(board, []chess.Move{res.Move})
	if err != nil {
		return err
	}
	fmt.Fprintf(b.out, "line     %s\n", line)
	return nil
}

// rate prints every root move with its score, best first for the mover.
func (b *bench) rate(ctx context.Context, board *chess.Board, d int) error {
	rated, err := search.New(b.cfg).RateMoves(ctx, board, d)
	if err != nil {
		return err
	}
	sortRated(rated, board.ToMove)
	for i, r := range rated {
		fmt.Fprintf(b.out, "%3d. %-8s %s\n", i+1, b.moveText(board, r.Move), search.FormatScore(r.Score, d))
	}
	return nil
}

// sortRated orders moves best first for colour, keeping generation order
// among equal scores.
func sortRated(rated []search.RatedMove, colour chess.Colour) {
	better := func(a, b int) bool {
		if colour == chess.White {
			return a > b
		}
		return a < b
	}
	for i := 1; i < len(rated); i++ {
		for j := i; j > 0 && better(rated[j].Score, rated[j-1].Score); j-- {
			rated[j], rated[j-1] = rated[j-1], rated[j]
		}
	}
}

// formatRate renders nodes per second with a k/M suffix.
func formatRate(nodes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	nps := float64(nodes) / elapsed.Seconds()
	switch {
	case nps >= 1e6:
		return fmt.Sprintf("%.1fM", nps/1e6)
	case nps >= 1e3:
		return fmt.Sprintf("%.1fk", nps/1e3)
	}
	return fmt.Sprintf("%.0f", nps)
}
