package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/numeric"
)

// appendCastlingMoves adds the kingside and queenside castling candidates
// for a king standing on its home square.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	if from != chess.KingHome(colour) || !board.Castling.Any(colour) {
		return moves
	}
	// Castling out of check is never allowed.
	if IsSquareAttacked(board, from, colour.Opposite()) {
		return moves
	}

	if board.Castling.Kingside(colour) && canCastle(board, colour, true) {
		moves = append(moves, chess.Move{From: from, To: from + 2, Class: chess.CastleKingside})
	}
	if board.Castling.Queenside(colour) && canCastle(board, colour, false) {
		moves = append(moves, chess.Move{From: from, To: from - 2, Class: chess.CastleQueenside})
	}
	return moves
}

// canCastle checks the rook, the squares between king and rook, and every
// square the king crosses or lands on.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	king := chess.KingHome(colour)
	rook := chess.RookHome(colour, kingside)
	if !board.Get(king).Is(colour, chess.King) || !board.Get(rook).Is(colour, chess.Rook) {
		return false
	}

	step := numeric.Sign(int(rook) - int(king))
	for sq := king + chess.Square(step); sq != rook; sq += chess.Square(step) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}

	opponent := colour.Opposite()
	for i := 1; i <= 2; i++ {
		if IsSquareAttacked(board, king+chess.Square(i*step), opponent) {
			return false
		}
	}
	return true
}

// castleRookSquares returns where the rook starts and ends for a castling move.
func castleRookSquares(colour chess.Colour, kingside bool) (from, to chess.Square) {
	from = chess.RookHome(colour, kingside)
	king := chess.KingHome(colour)
	if kingside {
		return from, king + 1
	}
	return from, king - 1
}

// updateCastlingRightsForSquare removes castling rights tied to a rook home
// square. It is called for both the origin (a rook moving away) and the
// destination (a rook being captured) of every move.
func updateCastlingRightsForSquare(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.H1:
		board.Castling.RevokeKingside(chess.White)
	case chess.A1:
		board.Castling.RevokeQueenside(chess.White)
	case chess.H8:
		board.Castling.RevokeKingside(chess.Black)
	case chess.A8:
		board.Castling.RevokeQueenside(chess.Black)
	}
}
