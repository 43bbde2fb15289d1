package fen

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	chesserrors "github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/testutil"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		valid bool
	}{
		{"initial position", InitialPosition, true},
		{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", true},
		{"bare kings", "7k/8/8/8/8/8/8/K7 w - - 0 1", true},
		{"short rank allowed", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPP/RNBQKBNR w KQkq - 0 1", true},
		{"extra spaces", "7k/8/8/8/8/8/8/K7  w - -  0 1", true},
		{"empty", "", false},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"nine squares in rank", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"digits overflow rank", "rnbqkbnr/pppppppp/81/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"no white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w KQkq - 0 1", false},
		{"two black kings", "rnbkkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"bad active colour", "7k/8/8/8/8/8/8/K7 x - - 0 1", false},
		{"bad castling", "7k/8/8/8/8/8/8/K7 w KX - 0 1", false},
		{"bad en passant", "7k/8/8/8/8/8/8/K7 w - e9 0 1", false},
		{"missing clocks", "7k/8/8/8/8/8/8/K7 w - -", false},
		{"bad piece letter", "7k/8/8/8/8/8/8/X6K w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.fen)
			if tt.valid {
				testutil.AssertNoError(t, err)
				testutil.AssertTrue(t, IsValid(tt.fen), "IsValid")
				return
			}
			if !errors.Is(err, chesserrors.ErrInvalidNotation) {
				t.Errorf("Validate(%q) error = %v; want ErrInvalidNotation", tt.fen, err)
			}
			testutil.AssertFalse(t, IsValid(tt.fen), "IsValid")
		})
	}
}

func TestPiecePlacement(t *testing.T) {
	ranks, err := PiecePlacement(InitialPosition)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ranks, []string{
		"rnbqkbnr", "pppppppp", "8", "8", "8", "8", "PPPPPPPP", "RNBQKBNR",
	})

	if _, err := PiecePlacement("not a fen"); err == nil {
		t.Error("PiecePlacement() accepted invalid notation")
	}
}

func TestParse(t *testing.T) {
	rec, err := Parse("rnbqkbnr/p1p1pppp/8/1p1pP3/8/8/PPPP1PPP/RNBQKBNR w Kq d6 4 3")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.ActiveColour, chess.White, "active colour")
	testutil.AssertEqual(t, rec.Castling.String(), "Kq", "castling")
	testutil.AssertEqual(t, rec.EnPassant, chess.EnPassantColumn('d'), "en passant column")
	testutil.AssertEqual(t, rec.EnPassantTarget, "d6", "en passant target")
	testutil.AssertEqual(t, rec.Halfmove, 4, "halfmove")
	testutil.AssertEqual(t, rec.Fullmove, 3, "fullmove")
	testutil.AssertEqual(t, len(rec.Ranks), 8, "rank count")
}

func TestRecordString(t *testing.T) {
	inputs := []string{
		InitialPosition,
		"rnbqkbnr/pppp1ppp/8/8/4pP2/1P6/PBPPP1PP/RN1QKBNR b KQkq f3 0 3",
		"7k/8/8/8/3B4/8/5K2/8 w - - 0 1",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			rec, err := Parse(in)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rec.String(), in)
		})
	}
}
