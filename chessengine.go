// Package chessengine is an embeddable chess rules-and-search engine.
//
// A caller holds a Board, asks for its legal moves, applies a chosen move and
// re-classifies the result. BestMove recommends a move with fixed-depth
// alpha-beta search. Text notation, rendering and persistence are left to
// the caller; see the notation package for move text.
package chessengine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/eval"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Core types.
type (
	Board          = chess.Board
	Move           = chess.Move
	MoveClass      = chess.MoveClass
	Piece          = chess.Piece
	Square         = chess.Square
	Colour         = chess.Colour
	Kind           = chess.Kind
	GameState      = chess.GameState
	CastlingRights = chess.CastlingRights
)

// Colours.
const (
	White = chess.White
	Black = chess.Black
)

// Piece kinds. Empty marks a vacant square and a move without promotion.
const (
	Empty  = chess.Empty
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

// Game states.
const (
	InProgress = chess.InProgress
	Check      = chess.Check
	Checkmate  = chess.Checkmate
	Stalemate  = chess.Stalemate
)

// Errors returned by the engine. Test for them with errors.Is.
var (
	ErrOutOfBounds      = errors.ErrOutOfBounds
	ErrIllegalMove      = errors.ErrIllegalMove
	ErrTerminalPosition = errors.ErrTerminalPosition
	ErrInvalidPlacement = errors.ErrInvalidPlacement
	ErrInvalidConfig    = errors.ErrInvalidConfig
)

// NewSquare returns the square at file and rank, both 0-7.
func NewSquare(file, rank int) (Square, error) {
	return chess.NewSquare(file, rank)
}

// NewPiece returns a piece of the given colour and kind.
func NewPiece(colour Colour, kind Kind) Piece {
	return chess.MakePiece(colour, kind)
}

// NewMove returns a move request. Pass Empty as promotion for every move
// except a pawn reaching the last rank, where a promotion kind is required.
// Apply rejects a request whose promotion does not match a legal move.
func NewMove(from, to Square, promotion Kind) Move {
	return chess.NewPromotion(from, to, promotion)
}

// NewBoard returns the standard initial position.
func NewBoard() *Board {
	return engine.NewInitialBoard()
}

// NewBoardFromPlacement builds a board from a piece placement with no
// castling rights and no en passant target. It fails with
// ErrInvalidPlacement unless each side has exactly one king.
func NewBoardFromPlacement(pieces map[Square]Piece, toMove Colour) (*Board, error) {
	return engine.NewBoardFromPlacement(pieces, toMove)
}

// LegalMoves returns the legal moves for the side to move.
func LegalMoves(b *Board) []Move {
	return engine.LegalMoves(b, b.ToMove)
}

// IsInCheck reports whether the side to move is in check.
func IsInCheck(b *Board) bool {
	return engine.IsInCheck(b, b.ToMove)
}

// Classify returns the state of the game for the side to move.
func Classify(b *Board) GameState {
	return engine.Classify(b)
}

// Evaluate returns the static evaluation in centipawns, positive when White
// is better.
func Evaluate(b *Board) int {
	return eval.Evaluate(b)
}

// LastCapturedPiece returns the piece taken by the move that produced b.
func LastCapturedPiece(b *Board) (Piece, bool) {
	return b.LastCaptured()
}

// Apply plays a legal move and returns the resulting board. b itself is
// never modified, including on error.
func Apply(b *Board, m Move) (*Board, error) {
	next := *b
	if err := engine.ApplyMove(&next, m); err != nil {
		return nil, err
	}
	return &next, nil
}

// BestMove searches depth plies and returns the best move for the side to
// move with its White-perspective score. It fails with ErrTerminalPosition
// on a checkmated or stalemated board.
func BestMove(b *Board, depth int) (Move, int, error) {
	cfg := config.NewConfigBuilder().WithSearchWorkers(1).Build()
	res, err := search.New(cfg).BestMove(b, depth)
	if err != nil {
		return Move{}, 0, err
	}
	return res.Move, res.Score, nil
}
