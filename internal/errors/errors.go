// Package errors provides sentinel errors and error types for chessgeo.
// It defines the failure conditions of board building, check detection and
// move generation, plus a structured error type that preserves position
// context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a FEN string that fails validation.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrWrongRankCount indicates a piece placement without exactly 8 ranks.
	ErrWrongRankCount = errors.New("wrong rank count")

	// ErrInvalidEmptyRunLength indicates an empty-square digit outside 1..8.
	ErrInvalidEmptyRunLength = errors.New("invalid empty run length")

	// ErrInvalidFigureLetter indicates a letter that is not one of the 12 piece letters.
	ErrInvalidFigureLetter = errors.New("invalid figure letter")

	// ErrInvalidCoordinate indicates a row or column outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidPiece indicates a figure/colour pair with no letter.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrKingNotFound indicates a board without a king of the queried colour.
	ErrKingNotFound = errors.New("king not found")

	// ErrNoPieceAtPosition indicates a move query for an empty square.
	ErrNoPieceAtPosition = errors.New("no piece at position")

	// ErrDuplicateSquare indicates two board entries on the same position.
	ErrDuplicateSquare = errors.New("duplicate square")

	// ErrIllegalMove indicates a destination outside the piece's legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates a move attempt by the side not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameNotFound indicates an unknown game session id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with position context: the FEN being processed,
// the square involved and, for batch input, the source line. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err    error  // The underlying error
	FEN    string // FEN of the position (if known)
	Square string // Square in algebraic form (if applicable)
	File   string // Source file name (if known)
	Line   int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "position error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
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
