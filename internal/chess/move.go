package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	Normal MoveClass = iota
	DoublePawnPush
	Capture
	EnPassantCapture
	CastleKingside
	CastleQueenside
	Promotion
	PromotionCapture
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"Normal", "DoublePawnPush", "Capture", "EnPassantCapture",
		"CastleKingside", "CastleQueenside", "Promotion", "PromotionCapture"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a request to move a piece from one square to another. It is only
// meaningful relative to a specific board and must be re-validated once the
// board changes. Castling is expressed as the king's two-square move.
type Move struct {
	From Square
	To   Square

	// The kind promoted to (Empty if not a promotion).
	Promotion Kind

	// Class is filled in by the move generator. Moves built by callers may
	// leave it zero; it is derived when the move is applied.
	Class MoveClass
}

// NewMove creates a plain move request.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promotion move request.
func NewPromotion(from, to Square, kind Kind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	switch m.Class {
	case Capture, EnPassantCapture, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion || m.Class == PromotionCapture
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// SameRequest reports whether two moves ask for the same origin, destination
// and promotion, ignoring the generator's class.
func (m Move) SameRequest(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(MakePiece(Black, m.Promotion).Letter()))
	}
	return s
}
