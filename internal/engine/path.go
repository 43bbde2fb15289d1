package engine

import "github.com/lgbarn/chessgeo-go/internal/chess"

// Direction tables. Row is the rank step, Col the file step.
var (
	diagonalDirs = []chess.Direction{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	straightDirs = []chess.Direction{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	allDirs      = append(append([]chess.Direction{}, diagonalDirs...), straightDirs...)

	knightOffsets = []chess.Direction{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
)

// walkRays collects the moves of a sliding piece of the given colour.
// Each ray stops at the first occupied square, which is included as a
// capture when it holds an opposing piece.
func walkRays(cm chess.BoardColorMap, from chess.Position, colour chess.Colour, dirs []chess.Direction) []chess.Move {
	row, col := PositionToCoordinate(from)
	var moves []chess.Move
	for _, dir := range dirs {
		r, c := row+dir.Row, col+dir.Col
		for inBounds(r, c) {
			occupant := cm[r-1][c-1]
			if occupant == colour {
				break // own piece
			}
			if occupant != chess.NoColour {
				moves = append(moves, chess.Move{Position: coordinate(r, c), IsTaken: true})
				break
			}
			moves = append(moves, chess.Move{Position: coordinate(r, c)})
			r += dir.Row
			c += dir.Col
		}
	}
	return moves
}

// stepTo collects single-step moves to each offset that is on the board and
// not held by a piece of the given colour.
func stepTo(cm chess.BoardColorMap, from chess.Position, colour chess.Colour, offsets []chess.Direction) []chess.Move {
	row, col := PositionToCoordinate(from)
	var moves []chess.Move
	for _, off := range offsets {
		r, c := row+off.Row, col+off.Col
		if !inBounds(r, c) {
			continue
		}
		occupant := cm[r-1][c-1]
		if occupant == colour {
			continue
		}
		moves = append(moves, chess.Move{Position: coordinate(r, c), IsTaken: occupant != chess.NoColour})
	}
	return moves
}
