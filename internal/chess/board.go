package chess

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// Board is the sparse set of occupied squares of one position.
// A Board is a value: none of its methods modify it, and the squares
// passed to NewBoard are copied. At most one entry exists per position.
type Board struct {
	squares []Square
}

// NewBoard creates a board from the given squares.
// It fails with ErrDuplicateSquare if two squares share a position.
func NewBoard(squares ...Square) (Board, error) {
	seen := make(map[Position]bool, len(squares))
	copied := make([]Square, 0, len(squares))
	for _, sq := range squares {
		if seen[sq.Position] {
			return Board{}, fmt.Errorf("%s: %w", sq.Position, errors.ErrDuplicateSquare)
		}
		seen[sq.Position] = true
		copied = append(copied, sq)
	}
	return Board{squares: copied}, nil
}

// Squares returns a copy of the occupied squares in board order.
func (b Board) Squares() []Square {
	out := make([]Square, len(b.squares))
	copy(out, b.squares)
	return out
}

// Len returns the number of occupied squares.
func (b Board) Len() int {
	return len(b.squares)
}

// At returns the piece on pos and whether the square is occupied.
func (b Board) At(pos Position) (Piece, bool) {
	for _, sq := range b.squares {
		if sq.Position == pos {
			return sq.Piece, true
		}
	}
	return Empty, false
}

// FindKing returns the position of the king of the given colour.
func (b Board) FindKing(colour Colour) (Position, bool) {
	for _, sq := range b.squares {
		if sq.Is(King, colour) {
			return sq.Position, true
		}
	}
	return Position{}, false
}

// Count returns the number of pieces matching the predicate.
func (b Board) Count(match func(Square) bool) int {
	n := 0
	for _, sq := range b.squares {
		if match(sq) {
			n++
		}
	}
	return n
}

// Without returns a new board with pos emptied.
func (b Board) Without(pos Position) Board {
	out := make([]Square, 0, len(b.squares))
	for _, sq := range b.squares {
		if sq.Position != pos {
			out = append(out, sq)
		}
	}
	return Board{squares: out}
}

// With returns a new board with sq placed, replacing any occupant of its position.
func (b Board) With(sq Square) Board {
	out := b.Without(sq.Position)
	out.squares = append(out.squares, sq)
	return out
}
