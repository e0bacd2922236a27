package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/numeric"
)

// Reasons attached to rejected moves.
const (
	reasonNoPiece          = "no piece on origin"
	reasonWrongSide        = "not side to move"
	reasonPromotionMissing = "promotion piece required"
	reasonBadPromotion     = "invalid promotion piece"
	reasonNotLegal         = "not a legal move"
	reasonKingExposed      = "leaves king in check"
	reasonGameOver         = "game is over"
)

// ApplyMove validates move against the legal moves of the side to move and,
// if it is one of them, plays it on board. The board is left untouched when
// an error is returned.
func ApplyMove(board *chess.Board, move chess.Move) error {
	resolved, err := ResolveMove(board, move)
	if err != nil {
		return err
	}
	MakeMove(board, resolved)
	return nil
}

// ResolveMove matches a move request against the legal set by origin,
// destination and promotion kind and returns the generator's fully
// classified move.
func ResolveMove(board *chess.Board, move chess.Move) (chess.Move, error) {
	colour := board.ToMove
	legal := LegalMoves(board, colour)

	if len(legal) == 0 {
		return chess.Move{}, moveError(board, move, reasonGameOver,
			fmt.Errorf("%w: %w", chesserrors.ErrIllegalMove, chesserrors.ErrTerminalPosition))
	}

	piece := board.Get(move.From)
	switch {
	case piece.IsEmpty():
		return chess.Move{}, moveError(board, move, reasonNoPiece, chesserrors.ErrIllegalMove)
	case piece.Colour != colour:
		return chess.Move{}, moveError(board, move, reasonWrongSide, chesserrors.ErrIllegalMove)
	case move.Promotion != chess.Empty && !move.Promotion.CanPromoteTo():
		return chess.Move{}, moveError(board, move, reasonBadPromotion, chesserrors.ErrIllegalMove)
	}

	promotes := false
	for _, m := range legal {
		if m.SameRequest(move) {
			return m, nil
		}
		if m.From == move.From && m.To == move.To && m.IsPromotion() {
			promotes = true
		}
	}

	if promotes && move.Promotion == chess.Empty {
		return chess.Move{}, moveError(board, move, reasonPromotionMissing, chesserrors.ErrIllegalMove)
	}
	for _, m := range PieceMoves(board, move.From) {
		if m.SameRequest(move) {
			return chess.Move{}, moveError(board, move, reasonKingExposed, chesserrors.ErrIllegalMove)
		}
	}
	return chess.Move{}, moveError(board, move, reasonNotLegal, chesserrors.ErrIllegalMove)
}

func moveError(board *chess.Board, move chess.Move, reason string, err error) error {
	return &chesserrors.MoveError{
		Err:        err,
		MoveText:   move.String(),
		MoveNumber: board.MoveNumber,
		Side:       board.ToMove.String(),
		Reason:     reason,
	}
}

// MakeMove plays a move that is already known to be legal, or at least
// pseudo-legal, without validation. A zero Class is derived from the board.
func MakeMove(board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return
	}
	colour := piece.Colour
	class := move.Class
	if class == chess.Normal {
		class = deriveClass(board, move, piece)
	}

	captured := board.Get(move.To)

	switch class {
	case chess.CastleKingside, chess.CastleQueenside:
		rookFrom, rookTo := castleRookSquares(colour, class == chess.CastleKingside)
		rook := board.Get(rookFrom)
		board.Clear(rookFrom)
		board.Set(rookTo, rook)

	case chess.EnPassantCapture:
		victim := chess.Square(int(move.To) - chess.ColourOffset(colour)*chess.BoardSize)
		captured = board.Get(victim)
		board.Clear(victim)
	}

	// Move the piece
	board.Clear(move.From)
	if move.Promotion != chess.Empty {
		board.Set(move.To, chess.MakePiece(colour, move.Promotion))
	} else {
		board.Set(move.To, piece)
	}

	// Castling rights are revoked together with the move that loses them.
	if piece.Kind == chess.King {
		board.Castling.RevokeAll(colour)
	}
	updateCastlingRightsForSquare(board, move.From)
	updateCastlingRightsForSquare(board, move.To)

	board.EnPassant = chess.NoSquare
	if piece.Kind == chess.Pawn && numeric.Abs(move.To.Rank()-move.From.Rank()) == 2 {
		board.EnPassant = chess.Square((int(move.From) + int(move.To)) / 2)
	}

	if piece.Kind == chess.Pawn || !captured.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	board.Captured = captured
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// deriveClass recovers the special-move class of a request built without one.
func deriveClass(board *chess.Board, move chess.Move, piece chess.Piece) chess.MoveClass {
	switch piece.Kind {
	case chess.King:
		if move.From == chess.KingHome(piece.Colour) {
			switch int(move.To) - int(move.From) {
			case 2:
				return chess.CastleKingside
			case -2:
				return chess.CastleQueenside
			}
		}
	case chess.Pawn:
		if move.To == board.EnPassant && move.From.File() != move.To.File() && board.Get(move.To).IsEmpty() {
			return chess.EnPassantCapture
		}
	}
	return chess.Normal
}
