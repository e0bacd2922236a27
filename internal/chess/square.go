package chess

import "github.com/lgbarn/chess-engine-go/internal/errors"

// Square is a board coordinate. Squares are indexed rank*8+file,
// so A1=0, H1=7, A8=56, H8=63.
type Square int8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	NoSquare Square = -1
)

// NewSquare builds a square from a file and rank in [0,7].
// Coordinates outside the board fail with ErrOutOfBounds rather than wrapping.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, errors.ErrOutOfBounds
	}
	return Square(rank*BoardSize + file), nil
}

// MustSquare is like NewSquare but panics on bad input. Use it for static
// tables and tests only.
func MustSquare(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank (row) of the square (0-7, where 0=rank 1).
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq >= A1 && sq <= H8
}

// Offset returns the square reached by moving df files and dr ranks.
// It fails with ErrOutOfBounds if the result leaves the board; a file
// step off the h-file never wraps onto the a-file.
func (sq Square) Offset(df, dr int) (Square, error) {
	if !sq.IsValid() {
		return NoSquare, errors.ErrOutOfBounds
	}
	return NewSquare(sq.File()+df, sq.Rank()+dr)
}

// String returns the square in algebraic form, e.g. "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// IsLight returns true if the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// RelativeRank returns the rank as seen from colour's side (0 = own back rank).
func (sq Square) RelativeRank(colour Colour) int {
	if colour == White {
		return sq.Rank()
	}
	return BoardSize - 1 - sq.Rank()
}

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square {
	return Square((BoardSize-1-sq.Rank())*BoardSize + sq.File())
}
