// Package errors provides sentinel errors and error types for the chess engine.
// It defines the engine's error taxonomy and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square coordinate or offset that leaves the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a move that is not in the current legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrTerminalPosition indicates an operation on a checkmate or stalemate position.
	ErrTerminalPosition = errors.New("terminal position")

	// ErrInvalidPlacement indicates a board that cannot be played from,
	// e.g. one without exactly one king per side.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors raised while applying or resolving a move. It carries
// the move text and the full-move number at which the move was attempted.
type MoveError struct {
	Err        error  // The underlying error
	MoveText   string // The move in coordinate notation (e.g. "e7e8q")
	MoveNumber uint   // Full-move number of the position (0 if unknown)
	Side       string // Side to move ("White" or "Black"), if known
	Reason     string // Short detail, e.g. "promotion piece required"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.MoveNumber > 0 {
		parts = append(parts, fmt.Sprintf("move %d", e.MoveNumber))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("%q", e.MoveText))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PlacementError describes why a piece placement was rejected.
type PlacementError struct {
	Err    error  // The underlying error, normally ErrInvalidPlacement
	Square string // Offending square (if applicable)
	Reason string
}

// Error returns a formatted error message with square and reason context.
func (e *PlacementError) Error() string {
	var parts []string
	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "placement error"
}

// Unwrap returns the underlying error.
func (e *PlacementError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
