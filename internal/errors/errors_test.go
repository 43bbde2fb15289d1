package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrWrongRankCount", ErrWrongRankCount, ErrWrongRankCount},
		{"ErrInvalidEmptyRunLength", ErrInvalidEmptyRunLength, ErrInvalidEmptyRunLength},
		{"ErrInvalidFigureLetter", ErrInvalidFigureLetter, ErrInvalidFigureLetter},
		{"ErrInvalidCoordinate", ErrInvalidCoordinate, ErrInvalidCoordinate},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrKingNotFound", ErrKingNotFound, ErrKingNotFound},
		{"ErrNoPieceAtPosition", ErrNoPieceAtPosition, ErrNoPieceAtPosition},
		{"ErrDuplicateSquare", ErrDuplicateSquare, ErrDuplicateSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNotYourTurn", ErrNotYourTurn, ErrNotYourTurn},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrKingNotFound, ErrNoPieceAtPosition) {
		t.Error("errors.Is(ErrKingNotFound, ErrNoPieceAtPosition) = true, want false")
	}
	if errors.Is(ErrWrongRankCount, ErrInvalidNotation) {
		t.Error("errors.Is(ErrWrongRankCount, ErrInvalidNotation) = true, want false")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to build board: %w", ErrInvalidNotation)

	if !errors.Is(wrapped, ErrInvalidNotation) {
		t.Errorf("errors.Is(wrapped, ErrInvalidNotation) = false, want true")
	}
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:    ErrNoPieceAtPosition,
				FEN:    "8/8/8/8/8/8/8/4K2k w - - 0 1",
				Square: "e4",
				File:   "positions.txt",
				Line:   7,
			},
			contains: []string{"positions.txt:7", "e4", "4K2k", "no piece at position"},
		},
		{
			name: "line only",
			err: &PositionError{
				Err:  ErrInvalidNotation,
				Line: 3,
			},
			contains: []string{"line 3", "invalid notation"},
		},
		{
			name:     "bare error",
			err:      &PositionError{Err: ErrKingNotFound},
			contains: []string{"king not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPositionError_Unwrap(t *testing.T) {
	posErr := &PositionError{
		Err:  ErrInvalidNotation,
		File: "batch.fen",
	}

	unwrapped := errors.Unwrap(posErr)
	if !errors.Is(unwrapped, ErrInvalidNotation) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidNotation)
	}

	if !errors.Is(posErr, ErrInvalidNotation) {
		t.Error("errors.Is(posErr, ErrInvalidNotation) = false, want true")
	}
}

func TestPositionError_As(t *testing.T) {
	posErr := &PositionError{
		Err:    ErrIllegalMove,
		Square: "g1",
		Line:   12,
	}

	wrapped := fmt.Errorf("processing failed: %w", posErr)

	var extractedErr *PositionError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract PositionError")
	}

	if extractedErr.Line != 12 {
		t.Errorf("extractedErr.Line = %d, want 12", extractedErr.Line)
	}
	if extractedErr.Square != "g1" {
		t.Errorf("extractedErr.Square = %q, want %q", extractedErr.Square, "g1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidNotation, "building board")

	if !errors.Is(wrapped, ErrInvalidNotation) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "building board") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %s-%s", "e2", "e5")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move e2-e5") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
