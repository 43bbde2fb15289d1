// Package engine computes attacked squares and legal moves for a chess.Board.
//
// Every function is pure: dense maps are derived from the board on each call
// and no board is modified, so queries may run concurrently on the same value.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// ColumnToIndex maps 'a'..'h' to 1..8. Other input yields 0.
func ColumnToIndex(c chess.Column) int {
	if !c.Valid() {
		return 0
	}
	return int(c-chess.FirstColumn) + 1
}

// RowToIndex maps a row to its grid index; rows are already numeric.
func RowToIndex(r chess.Row) int {
	return int(r)
}

// EnPassantColumnToIndex maps an en passant file to 1..8, or 0 for '-'.
func EnPassantColumnToIndex(e chess.EnPassantColumn) int {
	return ColumnToIndex(chess.Column(e))
}

// PositionToCoordinate returns the 1-based grid (row, col) of p.
func PositionToCoordinate(p chess.Position) (row, col int) {
	return RowToIndex(p.Row), ColumnToIndex(p.Column)
}

// CoordinateToPosition maps a 1-based (column x, row y) grid pair to a Position.
func CoordinateToPosition(x, y int) (chess.Position, error) {
	if x < 1 || x > chess.BoardSize || y < 1 || y > chess.BoardSize {
		return chess.Position{}, fmt.Errorf("(%d,%d): %w", x, y, errors.ErrInvalidCoordinate)
	}
	return chess.Pos(chess.FirstColumn+chess.Column(x-1), chess.Row(y)), nil
}

// coordinate is CoordinateToPosition for indices already known to be in range.
func coordinate(row, col int) chess.Position {
	return chess.Pos(chess.FirstColumn+chess.Column(col-1), chess.Row(row))
}

// inBounds reports whether a 1-based grid pair lies on the board.
func inBounds(row, col int) bool {
	return row >= 1 && row <= chess.BoardSize && col >= 1 && col <= chess.BoardSize
}

// LetterToFigure decodes a FEN piece letter. Upper case is white.
func LetterToFigure(letter byte) (chess.Piece, error) {
	colour, upper := chess.White, letter
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		upper -= 'a' - 'A'
	}

	var figure chess.Figure
	switch upper {
	case 'P':
		figure = chess.Pawn
	case 'N':
		figure = chess.Knight
	case 'B':
		figure = chess.Bishop
	case 'R':
		figure = chess.Rook
	case 'Q':
		figure = chess.Queen
	case 'K':
		figure = chess.King
	default:
		return chess.Empty, fmt.Errorf("%q: %w", letter, errors.ErrInvalidFigureLetter)
	}
	return chess.Piece{Figure: figure, Colour: colour}, nil
}

// FigureToLetter encodes a piece as its FEN letter.
func FigureToLetter(p chess.Piece) (byte, error) {
	var letter byte
	switch p.Figure {
	case chess.Pawn:
		letter = 'P'
	case chess.Knight:
		letter = 'N'
	case chess.Bishop:
		letter = 'B'
	case chess.Rook:
		letter = 'R'
	case chess.Queen:
		letter = 'Q'
	case chess.King:
		letter = 'K'
	default:
		return 0, fmt.Errorf("%v: %w", p, errors.ErrInvalidPiece)
	}

	switch p.Colour {
	case chess.White:
		return letter, nil
	case chess.Black:
		return letter + ('a' - 'A'), nil
	default:
		return 0, fmt.Errorf("%v: %w", p, errors.ErrInvalidPiece)
	}
}
