// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Step and ray directions as (file, rank) deltas.
var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs  = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	queenDirs     = [8][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// PieceMoves returns the pseudo-legal moves of the piece on from: moves that
// fit the piece's pattern and the board's occupancy, without checking whether
// the mover's own king is left in check.
func PieceMoves(board *chess.Board, from chess.Square) []chess.Move {
	return appendPieceMoves(nil, board, from, true)
}

// PseudoLegalMoves returns the pseudo-legal moves of every piece of the given colour.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Squares[sq]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		moves = appendPieceMoves(moves, board, sq, true)
	}
	return moves
}

// appendPieceMoves dispatches on the piece kind. Castling candidates are
// skipped when withCastling is false, which keeps attack generation free of
// recursion into check detection.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square, withCastling bool) []chess.Move {
	piece := board.Get(from)

	switch piece.Kind {
	case chess.Empty:
		return moves
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, piece.Colour)
	case chess.Knight:
		return appendStepMoves(moves, board, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, piece.Colour, straightDirs[:])
	case chess.Queen:
		return appendSlidingMoves(moves, board, from, piece.Colour, queenDirs[:])
	case chess.King:
		moves = appendStepMoves(moves, board, from, piece.Colour, kingOffsets[:])
		if withCastling {
			moves = appendCastlingMoves(moves, board, from, piece.Colour)
		}
		return moves
	}
	return moves
}

// appendPawnMoves generates pushes, captures, en passant and promotions.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)

	if one, err := from.Offset(0, dir); err == nil && board.Get(one).IsEmpty() {
		moves = appendPawnArrival(moves, from, one, colour, false)

		if from.RelativeRank(colour) == 1 {
			if two, err := from.Offset(0, 2*dir); err == nil && board.Get(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two, Class: chess.DoublePawnPush})
			}
		}
	}

	// Each capture diagonal is tried on its own; a pawn on e4 may take on d5 or f5.
	for _, df := range [2]int{-1, 1} {
		to, err := from.Offset(df, dir)
		if err != nil {
			continue
		}
		target := board.Get(to)
		switch {
		case !target.IsEmpty() && target.Colour != colour:
			moves = appendPawnArrival(moves, from, to, colour, true)
		case target.IsEmpty() && isEnPassantTarget(board, to, colour):
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.EnPassantCapture})
		}
	}
	return moves
}

// isEnPassantTarget reports whether a pawn of colour may capture en passant onto to.
func isEnPassantTarget(board *chess.Board, to chess.Square, colour chess.Colour) bool {
	if to != board.EnPassant || to.RelativeRank(colour) != 5 {
		return false
	}
	victim, err := to.Offset(0, -chess.ColourOffset(colour))
	if err != nil {
		return false
	}
	return board.Get(victim).Is(colour.Opposite(), chess.Pawn)
}

// appendPawnArrival adds a pawn move to to, expanding it into one move per
// promotion kind when to is on the last rank. No kind is implied.
func appendPawnArrival(moves []chess.Move, from, to chess.Square, colour chess.Colour, capture bool) []chess.Move {
	if to.RelativeRank(colour) != chess.BoardSize-1 {
		class := chess.Normal
		if capture {
			class = chess.Capture
		}
		return append(moves, chess.Move{From: from, To: to, Class: class})
	}

	class := chess.Promotion
	if capture {
		class = chess.PromotionCapture
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind, Class: class})
	}
	return moves
}

// appendStepMoves handles single-step patterns (knight, king).
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to, err := from.Offset(off[0], off[1])
		if err != nil {
			continue
		}
		target := board.Get(to)
		switch {
		case target.IsEmpty():
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal})
		case target.Colour != colour:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture})
		}
	}
	return moves
}

// appendSlidingMoves walks each ray until the edge, stopping before a friendly
// piece or on an enemy piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, err := from.Offset(dir[0], dir[1])
		for err == nil {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal})
			to, err = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
