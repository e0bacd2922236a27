package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/numeric"
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the target square for each kind of attacker, which
// gives the same answer as asking whether any opposing pseudo-legal move
// lands on the square.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks; an attacking pawn sits one rank behind the target
	// from its own point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if from, err := sq.Offset(df, pawnDir); err == nil && board.Get(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, err := sq.Offset(off[0], off[1]); err == nil && board.Get(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, err := sq.Offset(off[0], off[1]); err == nil && board.Get(from) == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)

	// Check sliding pieces (bishop, rook, queen) along diagonals
	if rayAttacked(board, sq, diagonalDirs[:], chess.MakePiece(byColour, chess.Bishop), queen) {
		return true
	}

	// Check sliding pieces along straight lines
	return rayAttacked(board, sq, straightDirs[:], chess.MakePiece(byColour, chess.Rook), queen)
}

// rayAttacked walks each ray from sq and reports whether the first piece met
// is one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		to, err := sq.Offset(dir[0], dir[1])
		for err == nil {
			piece := board.Get(to)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			to, err = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

// AttackedByPseudoMoves reports whether any pseudo-legal move of byColour
// ends on sq. It is the literal form of the attack rule and is much slower
// than IsSquareAttacked. Pawn pushes are excluded because they never capture.
func AttackedByPseudoMoves(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for from := chess.A1; from <= chess.H8; from++ {
		piece := board.Squares[from]
		if piece.IsEmpty() || piece.Colour != byColour {
			continue
		}
		if piece.Kind == chess.Pawn {
			if numeric.Abs(from.File()-sq.File()) == 1 && sq.Rank()-from.Rank() == chess.ColourOffset(byColour) {
				return true
			}
			continue
		}
		for _, m := range appendPieceMoves(nil, board, from, false) {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}
