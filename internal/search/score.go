package search

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/numeric"
)

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	return numeric.Abs(score) >= MateScore
}

// MateIn returns the number of moves to mate encoded in a score from a
// search of the given depth, positive when White mates. The second result
// is false for ordinary evaluations.
func MateIn(score, depth int) (int, bool) {
	if !IsMateScore(score) {
		return 0, false
	}
	remaining := numeric.Abs(score) - MateScore
	plies := depth - remaining // Plies from the root to the mated position
	moves := (plies + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return moves, true
}

// FormatScore renders a score as pawns ("+1.23", "-0.50") or as a mate
// distance ("+M3" when White mates in three, "-M2" when Black does).
func FormatScore(score, depth int) string {
	if n, ok := MateIn(score, depth); ok {
		if n < 0 {
			return fmt.Sprintf("-M%d", -n)
		}
		return fmt.Sprintf("+M%d", n)
	}

	sign := "+"
	if score < 0 {
		sign = "-"
	}
	cp := numeric.Abs(score)
	return fmt.Sprintf("%s%d.%02d", sign, cp/100, cp%100)
}
