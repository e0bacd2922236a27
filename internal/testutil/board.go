package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Well-known positions used across package tests.
const (
	// Kiwipete exercises castling, en passant, pins and promotions at low depth.
	Kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// FoolsMate is White checkmated after 1.f3 e5 2.g4 Qh4#.
	FoolsMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Stalemate has Black to move with no legal moves and not in check.
	Stalemate = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// MateInOne has White to mate with Ra8.
	MateInOne = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
)

// ParseTestBoard decodes a FEN string and returns the board, or nil if the
// FEN is rejected. Use this for tests where failure is an acceptable outcome.
func ParseTestBoard(fen string) *chess.Board {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil
	}
	return board
}

// MustBoard decodes a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to decode test FEN %q: %v", fen, err)
	}
	return board
}

// MustMove resolves coordinate text such as "e2e4" or "e7e8q" against the
// legal moves of board. It calls t.Fatal if the text is not a legal move.
func MustMove(t testing.TB, board *chess.Board, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("malformed move text %q", text)
	}
	from, err := engine.ParseSquare(text[0:2])
	if err != nil {
		t.Fatalf("move %q: %v", text, err)
	}
	to, err := engine.ParseSquare(text[2:4])
	if err != nil {
		t.Fatalf("move %q: %v", text, err)
	}
	request := chess.NewMove(from, to)
	if len(text) == 5 {
		request.Promotion = engine.ConvertFENCharToKind(text[4])
	}

	move, err := engine.ResolveMove(board, request)
	if err != nil {
		t.Fatalf("move %q: %v", text, err)
	}
	return move
}

// MustPlay applies a sequence of coordinate moves to board in place.
func MustPlay(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := engine.ApplyMove(board, MustMove(t, board, text)); err != nil {
			t.Fatalf("apply %q: %v", text, err)
		}
	}
}
