// Package chess provides core chess types for position geometry.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// NoColour marks an empty cell in a colour map.
type Colour int

const (
	Black Colour = iota
	White
	NoColour
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// ParseColour converts "white"/"w" or "black"/"b" to a Colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return NoColour, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidPiece)
	}
}

// Figure represents a chess piece type.
type Figure int

const (
	NoFigure Figure = iota // Empty cell
	Pawn
	Knight
	Bishop
	Rook
	King
	Queen
)

// String returns the upper-case figure name.
func (f Figure) String() string {
	switch f {
	case Pawn:
		return "PAWN"
	case Knight:
		return "KNIGHT"
	case Bishop:
		return "BISHOP"
	case Rook:
		return "ROOK"
	case King:
		return "KING"
	case Queen:
		return "QUEEN"
	default:
		return "NONE"
	}
}

// Piece is a figure together with its colour.
type Piece struct {
	Figure Figure
	Colour Colour
}

// Empty is the zero piece, used for unoccupied cells.
var Empty = Piece{Figure: NoFigure, Colour: NoColour}

// IsEmpty reports whether p holds no figure.
func (p Piece) IsEmpty() bool {
	return p.Figure == NoFigure
}

// Is reports whether p is the given figure of the given colour.
func (p Piece) Is(figure Figure, colour Colour) bool {
	return p.Figure == figure && p.Colour == colour
}

// String returns e.g. "white KING", or "empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Colour.String() + " " + p.Figure.String()
}

// W creates a white piece.
func W(figure Figure) Piece {
	return Piece{Figure: figure, Colour: White}
}

// B creates a black piece.
func B(figure Figure) Piece {
	return Piece{Figure: figure, Colour: Black}
}

// Column represents a chess file - 'a' to 'h'.
type Column byte

// Row represents a chess rank - 1 to 8.
type Row int

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstColumn Column = 'a'
	LastColumn  Column = 'h'
	FirstRow    Row    = 1
	LastRow     Row    = 8
)

// Valid reports whether c is on the board.
func (c Column) Valid() bool {
	return c >= FirstColumn && c <= LastColumn
}

// Valid reports whether r is on the board.
func (r Row) Valid() bool {
	return r >= FirstRow && r <= LastRow
}

// Position identifies a square irrespective of occupancy.
type Position struct {
	Row    Row
	Column Column
}

// Pos builds a Position from a column letter and a row number.
func Pos(column Column, row Row) Position {
	return Position{Row: row, Column: column}
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Row.Valid() && p.Column.Valid()
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", p.Column, p.Row)
}

// ParsePosition parses an algebraic square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	p := Position{Column: Column(s[0]), Row: Row(s[1] - '0')}
	if !p.Valid() {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return p, nil
}

// Square is an occupied board entry: a position plus the piece on it.
type Square struct {
	Position
	Piece
}

// String returns e.g. "e1 white KING".
func (s Square) String() string {
	return s.Position.String() + " " + s.Piece.String()
}

// Direction is a step vector in grid space.
type Direction struct {
	Row int
	Col int
}

// BoardPieceMap is a dense 8x8 view of a board, indexed [row-1][column-1].
type BoardPieceMap [BoardSize][BoardSize]Piece

// BoardColorMap is a dense 8x8 view of a board holding only colours.
type BoardColorMap [BoardSize][BoardSize]Colour

// EnPassantColumn names the file of the last double pawn push, or '-'.
type EnPassantColumn byte

// NoEnPassant means no en passant capture is available.
const NoEnPassant EnPassantColumn = '-'

// ParseEnPassantColumn accepts "-", a file letter or a target square ("d6").
func ParseEnPassantColumn(s string) (EnPassantColumn, error) {
	switch {
	case s == "" || s == "-":
		return NoEnPassant, nil
	case len(s) == 1 && Column(s[0]).Valid():
		return EnPassantColumn(s[0]), nil
	case len(s) == 2:
		p, err := ParsePosition(s)
		if err != nil {
			return NoEnPassant, err
		}
		return EnPassantColumn(p.Column), nil
	default:
		return NoEnPassant, fmt.Errorf("en passant %q: %w", s, errors.ErrInvalidCoordinate)
	}
}

// Available reports whether e names a file.
func (e EnPassantColumn) Available() bool {
	return Column(e).Valid()
}

// String returns the file letter or "-".
func (e EnPassantColumn) String() string {
	if !e.Available() {
		return "-"
	}
	return string(rune(e))
}
