package chess

// CastlingRights holds the four independent castling flags. Once a flag is
// cleared it is never set again for the lifetime of the game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Kingside reports the kingside flag for a colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside flag for a colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Any reports whether any flag is set for the colour.
func (c CastlingRights) Any(colour Colour) bool {
	return c.Kingside(colour) || c.Queenside(colour)
}

// RevokeKingside clears the kingside flag for a colour.
func (c *CastlingRights) RevokeKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// RevokeQueenside clears the queenside flag for a colour.
func (c *CastlingRights) RevokeQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// RevokeAll clears both flags for a colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	c.RevokeKingside(colour)
	c.RevokeQueenside(colour)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var s []byte
	if c.WhiteKingside {
		s = append(s, 'K')
	}
	if c.WhiteQueenside {
		s = append(s, 'Q')
	}
	if c.BlackKingside {
		s = append(s, 'k')
	}
	if c.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// Home squares used by castling.
const (
	WhiteKingHome = E1
	BlackKingHome = E8
)

// KingHome returns the king's starting square for a colour.
func KingHome(colour Colour) Square {
	if colour == White {
		return WhiteKingHome
	}
	return BlackKingHome
}

// RookHome returns the starting square of the kingside or queenside rook.
func RookHome(colour Colour, kingside bool) Square {
	switch {
	case colour == White && kingside:
		return H1
	case colour == White:
		return A1
	case kingside:
		return H8
	default:
		return A8
	}
}

// Board represents a chess board with all state needed for the game.
// A Board is a plain value: assigning it copies all 64 squares, so scratch
// copies for move simulation share nothing with the original.
type Board struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number, incremented after Black moves.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Castling flags for both sides.
	Castling CastlingRights

	// The square a pawn may capture onto en passant, or NoSquare. It is set only
	// by a two-square pawn advance and is cleared by the next move.
	EnPassant Square

	// The piece removed by the most recent move, or NoPiece.
	Captured Piece

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		EnPassant:  NoSquare,
		WKing:      NoSquare,
		BKing:      NoSquare,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[MustSquare(file, 0)] = W(backRank[file])
		b.Squares[MustSquare(file, 1)] = W(Pawn)
		b.Squares[MustSquare(file, 6)] = B(Pawn)
		b.Squares[MustSquare(file, 7)] = B(backRank[file])
	}

	b.WKing = E1
	b.BKing = E8
	b.Castling = AllCastlingRights()
	b.ToMove = White
	b.MoveNumber = 1
	b.HalfmoveClock = 0
	b.EnPassant = NoSquare
	b.Captured = NoPiece
}

// Get returns the piece at the given square, or NoPiece for an off-board square.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece at the given square and keeps king tracking current.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.IsValid() {
		return
	}
	b.Squares[sq] = piece
	if piece.Kind == King {
		if piece.Colour == White {
			b.WKing = sq
		} else {
			b.BKing = sq
		}
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// KingSquare returns the tracked king square for a colour, falling back to
// a scan if tracking is unset.
func (b *Board) KingSquare(colour Colour) Square {
	sq := b.BKing
	if colour == White {
		sq = b.WKing
	}
	if sq.IsValid() && b.Squares[sq].Is(colour, King) {
		return sq
	}
	for s := A1; s <= H8; s++ {
		if b.Squares[s].Is(colour, King) {
			return s
		}
	}
	return NoSquare
}

// LastCaptured returns the piece captured by the most recent move, if any.
func (b *Board) LastCaptured() (Piece, bool) {
	return b.Captured, !b.Captured.IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b.Squares {
		if p.Is(colour, kind) {
			n++
		}
	}
	return n
}

// String renders the board as eight FEN-letter rows, rank 8 first.
func (b *Board) String() string {
	out := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[MustSquare(file, rank)]
			if p.IsEmpty() {
				out = append(out, '.')
			} else {
				out = append(out, p.Letter())
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
