package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// CastlingLetter is one of the four FEN castling letters.
type CastlingLetter byte

const (
	NoCastle       CastlingLetter = 0
	WhiteKingside  CastlingLetter = 'K'
	WhiteQueenside CastlingLetter = 'Q'
	BlackKingside  CastlingLetter = 'k'
	BlackQueenside CastlingLetter = 'q'
)

// castlingOrder is the FEN emission order.
var castlingOrder = []CastlingLetter{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

// bit returns the CastlingRights bit for the letter, or 0.
func (l CastlingLetter) bit() CastlingRights {
	switch l {
	case WhiteKingside:
		return 1
	case WhiteQueenside:
		return 2
	case BlackKingside:
		return 4
	case BlackQueenside:
		return 8
	default:
		return 0
	}
}

// KingsideLetter returns the king-side castling letter for the colour.
func KingsideLetter(colour Colour) CastlingLetter {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideLetter returns the queen-side castling letter for the colour.
func QueensideLetter(colour Colour) CastlingLetter {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// CastlingRights is the set of castling letters still available.
type CastlingRights uint8

// AllCastlingRights is "KQkq".
const AllCastlingRights CastlingRights = 15

// Has reports whether the letter is in the set.
func (r CastlingRights) Has(l CastlingLetter) bool {
	bit := l.bit()
	return bit != 0 && r&bit != 0
}

// With returns the set with the letter added.
func (r CastlingRights) With(l CastlingLetter) CastlingRights {
	return r | l.bit()
}

// Without returns the set with the letter removed.
func (r CastlingRights) Without(l CastlingLetter) CastlingRights {
	return r &^ l.bit()
}

// String returns the FEN castling field, "-" when empty.
func (r CastlingRights) String() string {
	var sb strings.Builder
	for _, l := range castlingOrder {
		if r.Has(l) {
			sb.WriteByte(byte(l))
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastlingRights parses a FEN castling field such as "KQkq" or "-".
func ParseCastlingRights(s string) (CastlingRights, error) {
	var r CastlingRights
	if s == "-" || s == "" {
		return r, nil
	}
	for i := 0; i < len(s); i++ {
		l := CastlingLetter(s[i])
		if l.bit() == 0 {
			return 0, fmt.Errorf("castling letter %q: %w", s[i], errors.ErrInvalidNotation)
		}
		r = r.With(l)
	}
	return r, nil
}

// Move is a candidate destination plus what the caller needs to apply it.
type Move struct {
	Position
	IsTaken          bool
	Castle           CastlingLetter
	IsTakenEnPassant bool
	IsPromotion      bool
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// String returns the destination, with "x" for captures and the castling
// letter in brackets, e.g. "xd5", "g1[K]".
func (m Move) String() string {
	s := m.Position.String()
	if m.IsTaken {
		s = "x" + s
	}
	if m.IsTakenEnPassant {
		s += " e.p."
	}
	if m.IsCastle() {
		s += "[" + string(rune(m.Castle)) + "]"
	}
	return s
}
