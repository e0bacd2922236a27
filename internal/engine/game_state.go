package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Classify returns the state of the game for the side to move.
func Classify(board *chess.Board) chess.GameState {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case hasMoves && inCheck:
		return chess.Check
	case hasMoves:
		return chess.InProgress
	case inCheck:
		return chess.Checkmate
	default:
		return chess.Stalemate
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Classify(board) == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return Classify(board) == chess.Stalemate
}
