// Package eval provides the static position evaluator used by search.
package eval

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Material values in centipawns, indexed by Kind.
var pieceValue = [chess.NumKinds]int{
	chess.Empty:  0,
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// Piece-square bonuses from White's point of view. Row 0 is rank 1, so the
// tables read upside down relative to a diagram. Black uses the mirrored square.
var pst = [chess.NumKinds][chess.NumSquares]int{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	chess.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	chess.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	chess.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// PieceValue returns the material value of a piece kind in centipawns.
// Kings and empty squares are worth nothing.
func PieceValue(kind chess.Kind) int {
	if kind < 0 || kind >= chess.NumKinds {
		return 0
	}
	return pieceValue[kind]
}

// SquareBonus returns the piece-square bonus for a piece standing on sq,
// from that piece's own point of view.
func SquareBonus(piece chess.Piece, sq chess.Square) int {
	if piece.IsEmpty() || !sq.IsValid() {
		return 0
	}
	if piece.Colour == chess.Black {
		sq = sq.Mirror()
	}
	return pst[piece.Kind][sq]
}

// Evaluate scores a board in centipawns from White's perspective: positive
// favours White. It depends only on the board and keeps no state.
func Evaluate(board *chess.Board) int {
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Squares[sq]
		if piece.IsEmpty() {
			continue
		}
		v := PieceValue(piece.Kind) + SquareBonus(piece, sq)
		if piece.Colour == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// Material returns the total material of one side.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, piece := range board.Squares {
		if !piece.IsEmpty() && piece.Colour == colour {
			total += PieceValue(piece.Kind)
		}
	}
	return total
}

// MaterialAdvantage returns colour's material minus its opponent's.
func MaterialAdvantage(board *chess.Board, colour chess.Colour) int {
	return Material(board, colour) - Material(board, colour.Opposite())
}
