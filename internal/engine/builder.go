package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// BoardBuilder provides a fluent API for building validated boards.
type BoardBuilder struct {
	board *chess.Board
	err   error
}

// NewBoardBuilder creates a builder over an empty board with White to move,
// no castling rights and no en passant target.
func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{board: chess.NewBoard()}
}

// WithPiece places a piece on a square.
func (b *BoardBuilder) WithPiece(sq chess.Square, piece chess.Piece) *BoardBuilder {
	if !sq.IsValid() {
		b.fail(fmt.Errorf("piece %v on square %d: %w", piece, sq, chesserrors.ErrOutOfBounds))
		return b
	}
	b.board.Set(sq, piece)
	return b
}

// Clear empties a square.
func (b *BoardBuilder) Clear(sq chess.Square) *BoardBuilder {
	b.board.Clear(sq)
	return b
}

// WithSideToMove sets the side to move.
func (b *BoardBuilder) WithSideToMove(colour chess.Colour) *BoardBuilder {
	b.board.ToMove = colour
	return b
}

// WithCastling sets the castling rights.
func (b *BoardBuilder) WithCastling(rights chess.CastlingRights) *BoardBuilder {
	b.board.Castling = rights
	return b
}

// WithEnPassant sets the en passant target square.
func (b *BoardBuilder) WithEnPassant(sq chess.Square) *BoardBuilder {
	b.board.EnPassant = sq
	return b
}

// WithClocks sets the half-move clock and the full-move number.
func (b *BoardBuilder) WithClocks(halfmove, fullmove uint) *BoardBuilder {
	b.board.HalfmoveClock = halfmove
	b.board.MoveNumber = fullmove
	return b
}

func (b *BoardBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the placement and returns the board. The builder should
// not be reused afterwards.
func (b *BoardBuilder) Build() (*chess.Board, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := ValidateBoard(b.board); err != nil {
		return nil, err
	}
	return b.board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// NewBoardFromPlacement builds a board from a square-to-piece map with no
// castling rights and no en passant target.
func NewBoardFromPlacement(placement map[chess.Square]chess.Piece, toMove chess.Colour) (*chess.Board, error) {
	builder := NewBoardBuilder().WithSideToMove(toMove)
	for sq, piece := range placement {
		builder.WithPiece(sq, piece)
	}
	return builder.Build()
}

// ValidateBoard checks that a board can be played from. Every failure wraps
// ErrInvalidPlacement in a *PlacementError.
func ValidateBoard(board *chess.Board) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return placementError(chess.NoSquare, fmt.Sprintf("%v has %d kings, want 1", colour, n))
		}
	}

	for sq := chess.A1; sq <= chess.H8; sq++ {
		if board.Squares[sq].Kind == chess.Pawn && (sq.Rank() == 0 || sq.Rank() == chess.BoardSize-1) {
			return placementError(sq, "pawn on back rank")
		}
	}

	if err := validateCastling(board); err != nil {
		return err
	}
	if err := validateEnPassant(board); err != nil {
		return err
	}

	if IsInCheck(board, board.ToMove.Opposite()) {
		return placementError(board.KingSquare(board.ToMove.Opposite()), "side not to move is in check")
	}
	return nil
}

func validateCastling(board *chess.Board) error {
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if !board.Castling.Any(colour) {
			continue
		}
		king := chess.KingHome(colour)
		if !board.Get(king).Is(colour, chess.King) {
			return placementError(king, fmt.Sprintf("%v castling rights without king on home square", colour))
		}
		for _, kingside := range [2]bool{true, false} {
			has := board.Castling.Queenside(colour)
			if kingside {
				has = board.Castling.Kingside(colour)
			}
			rook := chess.RookHome(colour, kingside)
			if has && !board.Get(rook).Is(colour, chess.Rook) {
				return placementError(rook, fmt.Sprintf("%v castling rights without rook on home square", colour))
			}
		}
	}
	return nil
}

// validateEnPassant requires the target to sit behind a pawn of the side that
// just moved, on the square that pawn skipped over.
func validateEnPassant(board *chess.Board) error {
	ep := board.EnPassant
	if ep == chess.NoSquare {
		return nil
	}
	if !ep.IsValid() {
		return placementError(chess.NoSquare, "en passant target off the board")
	}

	mover := board.ToMove.Opposite()
	if ep.RelativeRank(mover) != 2 {
		return placementError(ep, "en passant target on wrong rank")
	}
	dir := chess.ColourOffset(mover)
	pawn, _ := ep.Offset(0, dir)
	origin, _ := ep.Offset(0, -dir)
	if !board.Get(pawn).Is(mover, chess.Pawn) {
		return placementError(ep, "en passant target without a pawn in front")
	}
	if !board.Get(ep).IsEmpty() || !board.Get(origin).IsEmpty() {
		return placementError(ep, "en passant path is occupied")
	}
	return nil
}

func placementError(sq chess.Square, reason string) error {
	pe := &chesserrors.PlacementError{Err: chesserrors.ErrInvalidPlacement, Reason: reason}
	if sq.IsValid() {
		pe.Square = sq.String()
	}
	return pe
}
