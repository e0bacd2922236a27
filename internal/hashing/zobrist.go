// Package hashing provides Zobrist position keys and the node-count cache
// used by perft.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Zobrist key tables, indexed by colour, kind and square.
var (
	zobristPiece     [2][chess.NumKinds][chess.NumSquares]uint64
	zobristCastle    [16]uint64 // One key per castling-rights combination
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64 // XORed in when Black is to move
)

func init() {
	// Fixed seed: keys are identical across runs and processes.
	rnd := rand.New(rand.NewPCG(0xC0DE, 0x5EED))

	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Zobrist computes the position key of a board: placement, side to move,
// castling rights and en passant file. Clocks and the last captured piece
// are not part of the key.
func Zobrist(board *chess.Board) uint64 {
	var key uint64

	for sq, p := range board.Squares {
		if p.IsEmpty() {
			continue
		}
		key ^= zobristPiece[p.Colour][p.Kind][sq]
	}

	if board.ToMove == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[castlingIndex(board.Castling)]

	if board.EnPassant != chess.NoSquare {
		key ^= zobristEnPassant[board.EnPassant.File()]
	}

	return key
}

func castlingIndex(c chess.CastlingRights) int {
	idx := 0
	if c.WhiteKingside {
		idx |= 1
	}
	if c.WhiteQueenside {
		idx |= 2
	}
	if c.BlackKingside {
		idx |= 4
	}
	if c.BlackQueenside {
		idx |= 8
	}
	return idx
}
