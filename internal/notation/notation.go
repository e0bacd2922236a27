// Package notation formats and parses move text: UCI coordinates, long
// algebraic and standard algebraic notation (SAN). Every move is resolved
// against the legal move set of the board it is played on.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// UCI formats a move in UCI notation, e.g. "e2e4" or "e7e8q".
func UCI(move chess.Move) string {
	return move.String()
}

// ParseMove resolves UCI text such as "g1f3" or "a7a8n" to the legal move
// it names on board.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move text %q", text)
	}

	from, err := engine.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move text %q", text)
	}
	to, err := engine.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move text %q", text)
	}

	move := chess.NewMove(from, to)
	if len(text) == 5 {
		move.Promotion = engine.ConvertFENCharToKind(text[4])
		if move.Promotion == chess.Empty {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move text %q: bad promotion letter", text)
		}
	}
	return engine.ResolveMove(board, move)
}

// LongAlgebraic formats a move with both squares, e.g. "Ng1-f3", "e4xd5",
// "e7-e8=Q" or "O-O".
func LongAlgebraic(board *chess.Board, move chess.Move) (string, error) {
	resolved, err := engine.ResolveMove(board, move)
	if err != nil {
		return "", err
	}

	switch resolved.Class {
	case chess.CastleKingside:
		return "O-O", nil
	case chess.CastleQueenside:
		return "O-O-O", nil
	}

	var sb strings.Builder

	if kind := board.Get(resolved.From).Kind; kind != chess.Pawn {
		sb.WriteByte(kind.Letter())
	}
	sb.WriteString(resolved.From.String())
	if resolved.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(resolved.To.String())
	writePromotion(&sb, resolved)

	return sb.String(), nil
}

// SAN formats a move in standard algebraic notation, including the check
// or mate suffix.
func SAN(board *chess.Board, move chess.Move) (string, error) {
	resolved, err := engine.ResolveMove(board, move)
	if err != nil {
		return "", err
	}
	legal := engine.LegalMoves(board, board.ToMove)
	return sanBody(board, resolved, legal) + checkSuffix(board, resolved), nil
}

// ParseSAN resolves SAN text such as "Nbd7", "exd6", "e8=Q+" or "O-O" to
// the legal move it names on board. Check and annotation suffixes are
// ignored, and "0-0" is accepted for castling.
func ParseSAN(board *chess.Board, text string) (chess.Move, error) {
	want := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	want = strings.ReplaceAll(want, "0", "O")

	legal := engine.LegalMoves(board, board.ToMove)
	for _, m := range legal {
		if sanBody(board, m, legal) == want {
			return m, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "SAN %q", text)
}

// MoveList formats a line of play from board in SAN with move numbers,
// e.g. "1. e4 e5 2. Nf3" or "12... Qxd4 13. Rd1". board is not modified.
func MoveList(board *chess.Board, moves []chess.Move) (string, error) {
	scratch := *board
	var sb strings.Builder

	for i, m := range moves {
		san, err := SAN(&scratch, m)
		if err != nil {
			return "", errors.Wrapf(err, "move %d", i+1)
		}

		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case scratch.ToMove == chess.White:
			fmt.Fprintf(&sb, "%d. ", scratch.MoveNumber)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", scratch.MoveNumber)
		}
		sb.WriteString(san)

		if err := engine.ApplyMove(&scratch, m); err != nil {
			return "", errors.Wrapf(err, "move %d", i+1)
		}
	}
	return sb.String(), nil
}

// sanBody is the SAN of a legal move without the check suffix.
func sanBody(board *chess.Board, move chess.Move, legal []chess.Move) string {
	switch move.Class {
	case chess.CastleKingside:
		return "O-O"
	case chess.CastleQueenside:
		return "O-O-O"
	}

	var sb strings.Builder
	kind := board.Get(move.From).Kind

	if kind == chess.Pawn {
		if move.IsCapture() {
			sb.WriteByte(move.From.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		writePromotion(&sb, move)
		return sb.String()
	}

	sb.WriteByte(kind.Letter())
	sb.WriteString(disambiguation(board, move, kind, legal))
	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell
// move apart from other moves of the same kind to the same square.
func disambiguation(board *chess.Board, move chess.Move, kind chess.Kind, legal []chess.Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.To != move.To || other.From == move.From || board.Get(other.From).Kind != kind {
			continue
		}
		ambiguous = true
		if other.From.File() == move.From.File() {
			sameFile = true
		}
		if other.From.Rank() == move.From.Rank() {
			sameRank = true
		}
	}

	from := move.From.String()
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	default:
		return from
	}
}

func checkSuffix(board *chess.Board, move chess.Move) string {
	scratch := *board
	engine.MakeMove(&scratch, move)
	switch engine.Classify(&scratch) {
	case chess.Checkmate:
		return "#"
	case chess.Check:
		return "+"
	}
	return ""
}

func writePromotion(sb *strings.Builder, move chess.Move) {
	if move.Promotion != chess.Empty {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
}
