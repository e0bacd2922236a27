package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Positions shared by the package tests.
const (
	fenKiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fenEndgame   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	fenPromotion = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	fenTricky    = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	fenMidgame   = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	fenCastling  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	fenFoolsMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	fenBackRank  = "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"
	fenStalemate = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// propertyFENs are walked by the property tests.
var propertyFENs = []string{
	InitialFEN,
	fenKiwipete,
	fenEndgame,
	fenPromotion,
	fenTricky,
	fenMidgame,
	fenCastling,
	"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	"8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 2",
}

func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

func findMove(moves []chess.Move, from, to chess.Square, promotion chess.Kind) (chess.Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return chess.Move{}, false
}

// changedSquares lists the squares whose contents differ between two boards.
func changedSquares(before, after *chess.Board) map[chess.Square]bool {
	changed := make(map[chess.Square]bool)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if before.Squares[sq] != after.Squares[sq] {
			changed[sq] = true
		}
	}
	return changed
}

// forEachChild calls fn with every board reachable by one legal move.
func forEachChild(board *chess.Board, fn func(m chess.Move, child *chess.Board)) {
	for _, m := range LegalMoves(board, board.ToMove) {
		child := *board
		MakeMove(&child, m)
		fn(m, &child)
	}
}
