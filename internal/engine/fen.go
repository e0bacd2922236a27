package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board from a FEN string. The side, castling, en
// passant and clock fields are optional; the placement is validated the same
// way as any other constructed board.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	builder := NewBoardBuilder()

	if err := parsePiecePositions(builder, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(builder, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(builder, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(builder, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(builder, parts); err != nil {
		return nil, err
	}

	board, err := builder.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "%q", fen)
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(builder *BoardBuilder, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "%d ranks in placement", len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.Empty {
					return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character: %c", c)
				}
				sq, err := chess.NewSquare(file, rank)
				if err != nil {
					return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				builder.WithPiece(sq, chess.MakePiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(builder *BoardBuilder, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		builder.WithSideToMove(chess.White)
	case "b":
		builder.WithSideToMove(chess.Black)
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(builder *BoardBuilder, parts []string) error {
	var rights chess.CastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		builder.WithCastling(rights)
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid castling character: %c", c)
		}
	}
	builder.WithCastling(rights)
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(builder *BoardBuilder, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := ParseSquare(parts[3])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %q", parts[3])
	}
	builder.WithEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(builder *BoardBuilder, parts []string) error {
	halfmove, fullmove := uint64(0), uint64(1)
	var err error
	if len(parts) >= 5 {
		if halfmove, err = strconv.ParseUint(parts[4], 10, 32); err != nil {
			return errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", parts[4])
		}
	}
	if len(parts) >= 6 {
		if fullmove, err = strconv.ParseUint(parts[5], 10, 32); err != nil || fullmove == 0 {
			return errors.Wrapf(errors.ErrInvalidFEN, "fullmove number %q", parts[5])
		}
	}
	builder.WithClocks(uint(halfmove), uint(fullmove))
	return nil
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(text string) (chess.Square, error) {
	if len(text) != 2 {
		return chess.NoSquare, errors.Wrapf(errors.ErrOutOfBounds, "square %q", text)
	}
	return chess.NewSquare(int(text[0])-'a', int(text[1])-'1')
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.MustSquare(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
