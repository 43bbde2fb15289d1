package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// IsPositionAttacked returns true if pos is attacked by the opponent of colour.
// pos need not hold a king, or anything at all. An opposing king next to pos
// counts as an attack.
func IsPositionAttacked(board chess.Board, pos chess.Position, colour chess.Colour) bool {
	return isAttacked(BoardToPieceMap(board), pos, colour)
}

func isAttacked(pm chess.BoardPieceMap, pos chess.Position, colour chess.Colour) bool {
	row, col := PositionToCoordinate(pos)
	if !inBounds(row, col) {
		return false
	}

	if rayAttacked(pm, row, col, colour, diagonalDirs, chess.Bishop) {
		return true
	}
	if rayAttacked(pm, row, col, colour, straightDirs, chess.Rook) {
		return true
	}

	for _, off := range knightOffsets {
		p := pieceAt(pm, row+off.Row, col+off.Col)
		if p.Figure == chess.Knight && p.Colour != colour {
			return true
		}
	}
	return false
}

// rayAttacked walks each direction from (row, col) and reports whether the
// first piece met is an opposing slider, or an adjacent king or pawn that
// reaches back to the origin. slider is Bishop or Rook; a queen always counts.
func rayAttacked(pm chess.BoardPieceMap, row, col int, colour chess.Colour, dirs []chess.Direction, slider chess.Figure) bool {
	for _, dir := range dirs {
		r, c := row+dir.Row, col+dir.Col
		for dist := 1; inBounds(r, c); dist++ {
			p := pm[r-1][c-1]
			if p.IsEmpty() {
				r += dir.Row
				c += dir.Col
				continue
			}
			if p.Colour == colour {
				break
			}
			if p.Figure == slider || p.Figure == chess.Queen {
				return true
			}
			if dist == 1 {
				if p.Figure == chess.King {
					return true
				}
				// A pawn captures one row forward, so it must sit one row behind.
				if p.Figure == chess.Pawn && dir.Col != 0 && dir.Row == -pawnForward(p.Colour) {
					return true
				}
			}
			break
		}
	}
	return false
}

// IsKingChecked returns true if the king of colour is attacked.
func IsKingChecked(board chess.Board, colour chess.Colour) (bool, error) {
	king, ok := board.FindKing(colour)
	if !ok {
		return false, fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
	}
	return IsPositionAttacked(board, king, colour), nil
}

// WouldPositionBeChecked returns true if the king of colour would be attacked
// on pos. The king is lifted off its current square first so that it does
// not shield pos from a ray passing through it.
func WouldPositionBeChecked(board chess.Board, pos chess.Position, colour chess.Colour) (bool, error) {
	king, ok := board.FindKing(colour)
	if !ok {
		return false, fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
	}
	return IsPositionAttacked(board.Without(king), pos, colour), nil
}

// IsCheckMate returns true if the king of colour is checked and cannot move.
func IsCheckMate(board chess.Board, colour chess.Colour) (bool, error) {
	checked, stuck, err := kingState(board, colour)
	return checked && stuck, err
}

// IsStaleMate returns true if the king of colour is not checked and cannot move.
func IsStaleMate(board chess.Board, colour chess.Colour) (bool, error) {
	checked, stuck, err := kingState(board, colour)
	return !checked && stuck, err
}

func kingState(board chess.Board, colour chess.Colour) (checked, stuck bool, err error) {
	king, ok := board.FindKing(colour)
	if !ok {
		return false, false, fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
	}
	moves, err := KingMoves(board, king, 0)
	if err != nil {
		return false, false, err
	}
	return IsPositionAttacked(board, king, colour), len(moves) == 0, nil
}
