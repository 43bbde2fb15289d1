package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
)

// BuildBoard creates a board from a FEN string.
// Only the piece placement field is decoded; the caller reads the remaining
// fields with fen.Parse. No partial board is returned on failure.
func BuildBoard(text string) (chess.Board, error) {
	ranks, err := fen.PiecePlacement(text)
	if err != nil {
		return chess.Board{}, err
	}
	return decodeRanks(ranks)
}

// decodeRanks decodes placement ranks, rank 8 first.
func decodeRanks(ranks []string) (chess.Board, error) {
	if len(ranks) != chess.BoardSize {
		return chess.Board{}, fmt.Errorf("got %d ranks: %w", len(ranks), errors.ErrWrongRankCount)
	}

	var squares []chess.Square
	for i, rank := range ranks {
		row := chess.BoardSize - i
		col := 1
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '0' && c <= '9' {
				run := int(c - '0')
				if run < 1 || run > chess.BoardSize {
					return chess.Board{}, fmt.Errorf("rank %d: %w", row, errors.ErrInvalidEmptyRunLength)
				}
				col += run
				continue
			}

			piece, err := LetterToFigure(c)
			if err != nil {
				return chess.Board{}, fmt.Errorf("rank %d: %w", row, err)
			}
			pos, err := CoordinateToPosition(col, row)
			if err != nil {
				return chess.Board{}, fmt.Errorf("rank %d: %w", row, err)
			}
			squares = append(squares, chess.Square{Position: pos, Piece: piece})
			col++
		}
	}

	return chess.NewBoard(squares...)
}

// BoardToPieceMap derives the dense piece grid of a board.
// Squares with out-of-range coordinates are skipped.
func BoardToPieceMap(b chess.Board) chess.BoardPieceMap {
	var m chess.BoardPieceMap
	for r := range m {
		for c := range m[r] {
			m[r][c] = chess.Empty
		}
	}
	for _, sq := range b.Squares() {
		row, col := PositionToCoordinate(sq.Position)
		if !inBounds(row, col) {
			continue
		}
		m[row-1][col-1] = sq.Piece
	}
	return m
}

// BoardToColorMap derives the dense colour grid of a board.
func BoardToColorMap(b chess.Board) chess.BoardColorMap {
	return pieceMapToColorMap(BoardToPieceMap(b))
}

func pieceMapToColorMap(pm chess.BoardPieceMap) chess.BoardColorMap {
	var m chess.BoardColorMap
	for r := range pm {
		for c, p := range pm[r] {
			if p.IsEmpty() {
				m[r][c] = chess.NoColour
			} else {
				m[r][c] = p.Colour
			}
		}
	}
	return m
}

// PieceFromPieceMap returns the piece at pos, or chess.Empty.
func PieceFromPieceMap(m chess.BoardPieceMap, pos chess.Position) chess.Piece {
	row, col := PositionToCoordinate(pos)
	return pieceAt(m, row, col)
}

// pieceAt is the grid-index form of PieceFromPieceMap.
func pieceAt(m chess.BoardPieceMap, row, col int) chess.Piece {
	if !inBounds(row, col) {
		return chess.Empty
	}
	return m[row-1][col-1]
}

// SetBoardMapColor patches a single cell of a colour map in place.
func SetBoardMapColor(m *chess.BoardColorMap, pos chess.Position, colour chess.Colour) {
	row, col := PositionToCoordinate(pos)
	if !inBounds(row, col) {
		return
	}
	m[row-1][col-1] = colour
}
