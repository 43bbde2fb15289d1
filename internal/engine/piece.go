package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// pieceOn returns the piece standing on from, or ErrNoPieceAtPosition.
func pieceOn(board chess.Board, from chess.Position) (chess.Piece, error) {
	p, ok := board.At(from)
	if !ok {
		return chess.Empty, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtPosition)
	}
	return p, nil
}

// BishopMoves returns the diagonal moves of the piece on from.
func BishopMoves(board chess.Board, from chess.Position) ([]chess.Move, error) {
	return slidingMoves(board, from, diagonalDirs)
}

// RookMoves returns the orthogonal moves of the piece on from.
func RookMoves(board chess.Board, from chess.Position) ([]chess.Move, error) {
	return slidingMoves(board, from, straightDirs)
}

// QueenMoves returns the union of bishop and rook moves of the piece on from.
func QueenMoves(board chess.Board, from chess.Position) ([]chess.Move, error) {
	return slidingMoves(board, from, allDirs)
}

// KnightMoves returns the knight jumps of the piece on from.
func KnightMoves(board chess.Board, from chess.Position) ([]chess.Move, error) {
	p, err := pieceOn(board, from)
	if err != nil {
		return nil, err
	}
	return stepTo(BoardToColorMap(board), from, p.Colour, knightOffsets), nil
}

func slidingMoves(board chess.Board, from chess.Position, dirs []chess.Direction) ([]chess.Move, error) {
	p, err := pieceOn(board, from)
	if err != nil {
		return nil, err
	}
	return walkRays(BoardToColorMap(board), from, p.Colour, dirs), nil
}
