package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		checkFn func(*chess.Board) bool
	}{
		{
			name: "white kingside castle",
			fen:  fenCastling,
			move: chess.NewMove(chess.E1, chess.G1),
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.G1) == chess.W(chess.King) &&
					b.Get(chess.F1) == chess.W(chess.Rook) &&
					b.Get(chess.E1).IsEmpty() &&
					b.Get(chess.H1).IsEmpty() &&
					b.ToMove == chess.Black
			},
		},
		{
			name: "white queenside castle",
			fen:  fenCastling,
			move: chess.NewMove(chess.E1, chess.C1),
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.C1) == chess.W(chess.King) &&
					b.Get(chess.D1) == chess.W(chess.Rook) &&
					b.Get(chess.E1).IsEmpty() &&
					b.Get(chess.A1).IsEmpty() &&
					b.Get(chess.B1).IsEmpty() &&
					b.ToMove == chess.Black
			},
		},
		{
			name: "black kingside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: chess.NewMove(chess.E8, chess.G8),
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.G8) == chess.B(chess.King) &&
					b.Get(chess.F8) == chess.B(chess.Rook) &&
					b.Get(chess.E8).IsEmpty() &&
					b.Get(chess.H8).IsEmpty() &&
					b.ToMove == chess.White &&
					b.MoveNumber == 2
			},
		},
		{
			name: "black queenside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: chess.NewMove(chess.E8, chess.C8),
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.C8) == chess.B(chess.King) &&
					b.Get(chess.D8) == chess.B(chess.Rook) &&
					b.Get(chess.E8).IsEmpty() &&
					b.Get(chess.A8).IsEmpty() &&
					b.KingSquare(chess.Black) == chess.C8
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			colour := board.ToMove

			if err := ApplyMove(board, tt.move); err != nil {
				t.Fatalf("ApplyMove(%v) error: %v", tt.move, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("ApplyMove(%v) produced unexpected board:\n%v", tt.move, board)
			}
			if board.Castling.Any(colour) {
				t.Errorf("castling rights for %v = %v after castling, want none", colour, board.Castling)
			}
			if !board.Castling.Any(colour.Opposite()) {
				t.Errorf("castling rights for %v were revoked by the opponent's castle", colour.Opposite())
			}
		})
	}
}

// Both castles are distinct legal moves; performing one revokes both rights
// in the same step, and a board copied beforehand keeps its own rights.
func TestApplyMove_CastlingRevocationIsAtomic(t *testing.T) {
	board := mustBoard(t, fenCastling)
	legal := LegalMoves(board, chess.White)

	kingside, okK := findMove(legal, chess.E1, chess.G1, chess.Empty)
	queenside, okQ := findMove(legal, chess.E1, chess.C1, chess.Empty)
	if !okK || !okQ {
		t.Fatalf("both castles should be legal, got kingside=%v queenside=%v", okK, okQ)
	}
	if kingside == queenside {
		t.Fatal("kingside and queenside castles are the same move")
	}

	before := board.Copy()
	if err := ApplyMove(board, kingside); err != nil {
		t.Fatalf("ApplyMove(O-O) error: %v", err)
	}
	if board.Castling.Kingside(chess.White) || board.Castling.Queenside(chess.White) {
		t.Errorf("white rights after O-O = %v, want both revoked", board.Castling)
	}

	// The stale queenside move is still valid against the board it came from.
	if err := ApplyMove(before, queenside); err != nil {
		t.Errorf("ApplyMove(O-O-O) on the earlier board error: %v", err)
	}

	// Against the new board it is rejected rather than silently played.
	err := ApplyMove(board, queenside)
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("ApplyMove(stale O-O-O) error = %v, want ErrIllegalMove", err)
	}
}

func TestApplyMove_CastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
		want chess.CastlingRights
	}{
		{
			name: "king move revokes both",
			fen:  fenCastling,
			move: chess.NewMove(chess.E1, chess.F1),
			want: chess.CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "queen rook leaving home",
			fen:  fenCastling,
			move: chess.NewMove(chess.A1, chess.A2),
			want: chess.CastlingRights{WhiteKingside: true, BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "rook captured on its home square",
			fen:  fenCastling,
			move: chess.NewMove(chess.H1, chess.H8),
			want: chess.CastlingRights{WhiteQueenside: true, BlackQueenside: true},
		},
		{
			name: "black rook captures on a1",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: chess.NewMove(chess.A8, chess.A1),
			want: chess.CastlingRights{WhiteKingside: true, BlackKingside: true},
		},
		{
			name: "unrelated move keeps rights",
			fen:  InitialFEN,
			move: chess.NewMove(chess.G1, chess.F3),
			want: chess.AllCastlingRights(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if err := ApplyMove(board, tt.move); err != nil {
				t.Fatalf("ApplyMove(%v) error: %v", tt.move, err)
			}
			if diff := cmp.Diff(tt.want, board.Castling); diff != "" {
				t.Errorf("Castling mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")

	if err := ApplyMove(board, chess.NewMove(chess.E5, chess.D6)); err != nil {
		t.Fatalf("ApplyMove(e5d6) error: %v", err)
	}
	if got := board.Get(chess.D6); got != chess.W(chess.Pawn) {
		t.Errorf("Get(d6) = %v, want White Pawn", got)
	}
	if got := board.Get(chess.D5); !got.IsEmpty() {
		t.Errorf("Get(d5) = %v, want Empty (captured en passant)", got)
	}
	if got, ok := board.LastCaptured(); !ok || got != chess.B(chess.Pawn) {
		t.Errorf("LastCaptured() = %v, %v; want Black Pawn, true", got, ok)
	}
	if board.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v after the capture, want NoSquare", board.EnPassant)
	}
}

func TestApplyMove_EnPassantTargetLifetime(t *testing.T) {
	board := NewInitialBoard()

	if err := ApplyMove(board, chess.NewMove(chess.E2, chess.E4)); err != nil {
		t.Fatalf("ApplyMove(e2e4) error: %v", err)
	}
	if board.EnPassant != chess.E3 {
		t.Errorf("EnPassant after e2e4 = %v, want e3", board.EnPassant)
	}

	if err := ApplyMove(board, chess.NewMove(chess.G8, chess.F6)); err != nil {
		t.Fatalf("ApplyMove(g8f6) error: %v", err)
	}
	if board.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant after g8f6 = %v, want NoSquare", board.EnPassant)
	}

	if err := ApplyMove(board, chess.NewMove(chess.E4, chess.E5)); err != nil {
		t.Fatalf("ApplyMove(e4e5) error: %v", err)
	}
	if err := ApplyMove(board, chess.NewMove(chess.D7, chess.D5)); err != nil {
		t.Fatalf("ApplyMove(d7d5) error: %v", err)
	}
	if board.EnPassant != chess.D6 {
		t.Errorf("EnPassant after d7d5 = %v, want d6", board.EnPassant)
	}

	// The target expires if not used at once.
	if err := ApplyMove(board, chess.NewMove(chess.B1, chess.C3)); err != nil {
		t.Fatalf("ApplyMove(b1c3) error: %v", err)
	}
	if err := ApplyMove(board, chess.NewMove(chess.B8, chess.C6)); err != nil {
		t.Fatalf("ApplyMove(b8c6) error: %v", err)
	}
	err := ApplyMove(board, chess.NewMove(chess.E5, chess.D6))
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("late en passant error = %v, want ErrIllegalMove", err)
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	for _, kind := range chess.PromotionKinds {
		t.Run(kind.String(), func(t *testing.T) {
			board := mustBoard(t, "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1")

			if err := ApplyMove(board, chess.NewPromotion(chess.E7, chess.E8, kind)); err != nil {
				t.Fatalf("ApplyMove(e7e8=%v) error: %v", kind, err)
			}
			if got := board.Get(chess.E8); got != chess.W(kind) {
				t.Errorf("Get(e8) = %v, want White %v", got, kind)
			}
			if got := board.Get(chess.E7); !got.IsEmpty() {
				t.Errorf("Get(e7) = %v, want Empty", got)
			}
		})
	}
}

func TestApplyMove_PromotionCapture(t *testing.T) {
	board := mustBoard(t, "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1")

	if err := ApplyMove(board, chess.NewPromotion(chess.E7, chess.D8, chess.Knight)); err != nil {
		t.Fatalf("ApplyMove(e7d8=N) error: %v", err)
	}
	if got := board.Get(chess.D8); got != chess.W(chess.Knight) {
		t.Errorf("Get(d8) = %v, want White Knight", got)
	}
	if got, _ := board.LastCaptured(); got != chess.B(chess.Rook) {
		t.Errorf("LastCaptured() = %v, want Black Rook", got)
	}
}

// Only the squares a move is documented to touch may change.
func TestApplyMove_ChangedSquares(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
		want []chess.Square
	}{
		{"quiet move", InitialFEN, chess.NewMove(chess.G1, chess.F3), []chess.Square{chess.G1, chess.F3}},
		{"double push", InitialFEN, chess.NewMove(chess.E2, chess.E4), []chess.Square{chess.E2, chess.E4}},
		{"capture", "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", chess.NewMove(chess.E4, chess.D5), []chess.Square{chess.E4, chess.D5}},
		{"kingside castle", fenCastling, chess.NewMove(chess.E1, chess.G1), []chess.Square{chess.E1, chess.F1, chess.G1, chess.H1}},
		{"queenside castle", fenCastling, chess.NewMove(chess.E1, chess.C1), []chess.Square{chess.A1, chess.C1, chess.D1, chess.E1}},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", chess.NewMove(chess.E5, chess.D6), []chess.Square{chess.D5, chess.D6, chess.E5}},
		{"promotion", "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1", chess.NewPromotion(chess.E7, chess.E8, chess.Rook), []chess.Square{chess.E7, chess.E8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := board.Copy()

			if err := ApplyMove(board, tt.move); err != nil {
				t.Fatalf("ApplyMove(%v) error: %v", tt.move, err)
			}

			want := make(map[chess.Square]bool)
			for _, sq := range tt.want {
				want[sq] = true
			}
			if diff := cmp.Diff(want, changedSquares(before, board)); diff != "" {
				t.Errorf("changed squares mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyMove_Counters(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		move         chess.Move
		wantHalfmove uint
		wantFullmove uint
		wantCaptured chess.Piece
	}{
		{"white quiet move", "4k3/8/8/8/8/8/8/R3K3 w - - 5 10", chess.NewMove(chess.A1, chess.A5), 6, 10, chess.NoPiece},
		{"black quiet move", "4k3/8/8/8/8/8/8/R3K3 b - - 5 10", chess.NewMove(chess.E8, chess.D8), 6, 11, chess.NoPiece},
		{"pawn move resets", "4k3/8/8/8/8/8/4P3/4K3 w - - 7 3", chess.NewMove(chess.E2, chess.E3), 0, 3, chess.NoPiece},
		{"capture resets", "4k3/8/8/8/r7/8/8/R3K3 w - - 9 3", chess.NewMove(chess.A1, chess.A4), 0, 3, chess.B(chess.Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if err := ApplyMove(board, tt.move); err != nil {
				t.Fatalf("ApplyMove(%v) error: %v", tt.move, err)
			}
			if board.HalfmoveClock != tt.wantHalfmove {
				t.Errorf("HalfmoveClock = %d, want %d", board.HalfmoveClock, tt.wantHalfmove)
			}
			if board.MoveNumber != tt.wantFullmove {
				t.Errorf("MoveNumber = %d, want %d", board.MoveNumber, tt.wantFullmove)
			}
			if board.Captured != tt.wantCaptured {
				t.Errorf("Captured = %v, want %v", board.Captured, tt.wantCaptured)
			}
		})
	}
}

func TestApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		move         chess.Move
		wantReason   string
		wantTerminal bool
	}{
		{"empty origin", InitialFEN, chess.NewMove(chess.E4, chess.E5), "no piece on origin", false},
		{"opponent's piece", InitialFEN, chess.NewMove(chess.E7, chess.E5), "not side to move", false},
		{"impossible pattern", InitialFEN, chess.NewMove(chess.G1, chess.G3), "not a legal move", false},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.NewMove(chess.E2, chess.D3), "leaves king in check", false},
		{"promotion without a piece", "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1", chess.NewMove(chess.E7, chess.E8), "promotion piece required", false},
		{"promotion to a king", "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1", chess.NewPromotion(chess.E7, chess.E8, chess.King), "invalid promotion piece", false},
		{"promotion kind on a normal move", InitialFEN, chess.NewPromotion(chess.E2, chess.E4, chess.Queen), "not a legal move", false},
		{"checkmated side", fenFoolsMate, chess.NewMove(chess.E1, chess.F2), "game is over", true},
		{"stalemated side", fenStalemate, chess.NewMove(chess.H8, chess.G8), "game is over", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := *board

			err := ApplyMove(board, tt.move)
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Fatalf("ApplyMove(%v) error = %v, want ErrIllegalMove", tt.move, err)
			}
			if got := errors.Is(err, chesserrors.ErrTerminalPosition); got != tt.wantTerminal {
				t.Errorf("errors.Is(err, ErrTerminalPosition) = %v, want %v", got, tt.wantTerminal)
			}

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("ApplyMove(%v) error %T is not a *MoveError", tt.move, err)
			}
			if moveErr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", moveErr.Reason, tt.wantReason)
			}
			if moveErr.MoveText != tt.move.String() {
				t.Errorf("MoveText = %q, want %q", moveErr.MoveText, tt.move.String())
			}

			if diff := cmp.Diff(before, *board); diff != "" {
				t.Errorf("rejected move changed the board (-before +after):\n%s", diff)
			}
		})
	}
}

func TestMakeMove_DerivesClass(t *testing.T) {
	board := mustBoard(t, fenCastling)
	MakeMove(board, chess.NewMove(chess.E1, chess.C1))
	if got := board.Get(chess.D1); got != chess.W(chess.Rook) {
		t.Errorf("Get(d1) = %v after unclassified castle, want White Rook", got)
	}

	board = mustBoard(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	MakeMove(board, chess.NewMove(chess.E5, chess.D6))
	if got := board.Get(chess.D5); !got.IsEmpty() {
		t.Errorf("Get(d5) = %v after unclassified en passant, want Empty", got)
	}
}

func TestResolveMove(t *testing.T) {
	board := NewInitialBoard()
	m, err := ResolveMove(board, chess.NewMove(chess.E2, chess.E4))
	if err != nil {
		t.Fatalf("ResolveMove(e2e4) error: %v", err)
	}
	if m.Class != chess.DoublePawnPush {
		t.Errorf("ResolveMove(e2e4).Class = %v, want DoublePawnPush", m.Class)
	}
}
