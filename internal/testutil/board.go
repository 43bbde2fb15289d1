package testutil

import (
	"testing"

	"github.com/lgbarn/chessgeo-go/internal/chess"
)

var pieceLetters = map[byte]chess.Piece{
	'P': chess.W(chess.Pawn), 'N': chess.W(chess.Knight), 'B': chess.W(chess.Bishop),
	'R': chess.W(chess.Rook), 'Q': chess.W(chess.Queen), 'K': chess.W(chess.King),
	'p': chess.B(chess.Pawn), 'n': chess.B(chess.Knight), 'b': chess.B(chess.Bishop),
	'r': chess.B(chess.Rook), 'q': chess.B(chess.Queen), 'k': chess.B(chess.King),
}

// MustBoard builds a board from entries such as "Ke1" or "pd7".
// The letter uses FEN case: upper case is white.
func MustBoard(t *testing.T, entries ...string) chess.Board {
	t.Helper()
	squares := make([]chess.Square, 0, len(entries))
	for _, e := range entries {
		if len(e) != 3 {
			t.Fatalf("board entry %q: want letter plus square", e)
		}
		piece, ok := pieceLetters[e[0]]
		if !ok {
			t.Fatalf("board entry %q: unknown piece letter", e)
		}
		pos := MustPosition(t, e[1:])
		squares = append(squares, chess.Square{Position: pos, Piece: piece})
	}
	b, err := chess.NewBoard(squares...)
	if err != nil {
		t.Fatalf("NewBoard(%v) error = %v", entries, err)
	}
	return b
}

// MustPosition parses an algebraic square name or fails the test.
func MustPosition(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q) error = %v", s, err)
	}
	return pos
}
