// Package matching selects positions by the material on the board.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// materialCounts holds piece counts indexed by figure.
type materialCounts [chess.Queen + 1]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	white      materialCounts
	black      materialCounts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material %q: %w", pattern, errors.ErrInvalidNotation)
	}
	if err := parseSide(parts[0], chess.White, &mm.white); err != nil {
		return fmt.Errorf("material %q: %w", pattern, err)
	}
	if len(parts) == 2 {
		if err := parseSide(parts[1], chess.Black, &mm.black); err != nil {
			return fmt.Errorf("material %q: %w", pattern, err)
		}
	}
	return nil
}

func parseSide(s string, colour chess.Colour, counts *materialCounts) error {
	for i := 0; i < len(s); i++ {
		p, err := engine.LetterToFigure(s[i])
		if err != nil {
			return err
		}
		if p.Colour != colour {
			return fmt.Errorf("%c is not a %s piece: %w", s[i], colour, errors.ErrInvalidFigureLetter)
		}
		counts[p.Figure]++
	}
	return nil
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(board chess.Board) bool {
	var white, black materialCounts
	for _, sq := range board.Squares() {
		if sq.Colour == chess.White {
			white[sq.Figure]++
		} else {
			black[sq.Figure]++
		}
	}

	if mm.exactMatch {
		return white == mm.white && black == mm.black
	}
	return atLeast(white, mm.white) && atLeast(black, mm.black)
}

// atLeast reports whether have holds at least the pieces in want.
func atLeast(have, want materialCounts) bool {
	for f, n := range want {
		if have[f] < n {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// String returns the pattern.
func (mm *MaterialMatcher) String() string {
	return mm.pattern
}
