package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns every legal move for colour, in generation order:
// squares a1 to h8, and within a square the order of the piece's pattern.
// The order is stable for a given board.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Squares[sq]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, m := range appendPieceMoves(nil, board, sq, true) {
			if leavesKingSafe(board, m, colour) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from. It returns nil
// when the square is empty or holds a piece of the side not to move.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil
	}
	var legal []chess.Move
	for _, m := range appendPieceMoves(nil, board, from, true) {
		if leavesKingSafe(board, m, piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Squares[sq]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, m := range appendPieceMoves(nil, board, sq, true) {
			if leavesKingSafe(board, m, colour) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe makes a move on a copied board and checks whether the mover's
// king is out of check afterwards.
func leavesKingSafe(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	scratch := *board
	scratch.ToMove = colour
	MakeMove(&scratch, move)
	return !IsInCheck(&scratch, colour)
}
