package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// ApplyMove returns the board after the piece on from makes move.
// The input board is left untouched. Move metadata decides the side effects:
// IsTakenEnPassant removes the pawn beside the mover and Castle relocates the
// rook. A pawn reaching its last row stays a pawn.
//
// ApplyMove does not check legality; pass a move produced by LegalMovesForPiece.
func ApplyMove(board chess.Board, from chess.Position, move chess.Move) (chess.Board, error) {
	p, err := pieceOn(board, from)
	if err != nil {
		return chess.Board{}, err
	}
	if !move.Position.Valid() {
		return chess.Board{}, fmt.Errorf("move to %v: %w", move.Position, errors.ErrInvalidCoordinate)
	}

	next := board.Without(from).Without(move.Position)

	if move.IsTakenEnPassant {
		next = next.Without(chess.Pos(move.Column, from.Row))
	}

	if move.IsCastle() {
		rookFrom, rookTo, err := castlingRookSquares(move)
		if err != nil {
			return chess.Board{}, err
		}
		rook, ok := board.At(rookFrom)
		if !ok {
			return chess.Board{}, fmt.Errorf("castling rook on %s: %w", rookFrom, errors.ErrNoPieceAtPosition)
		}
		next = next.Without(rookFrom).With(chess.Square{Position: rookTo, Piece: rook})
	}

	return next.With(chess.Square{Position: move.Position, Piece: p}), nil
}

// castlingRookSquares returns where the rook stands and lands for a castling move.
func castlingRookSquares(move chess.Move) (from, to chess.Position, err error) {
	row := move.Row
	switch move.Castle {
	case chess.WhiteKingside, chess.BlackKingside:
		return chess.Pos('h', row), chess.Pos('f', row), nil
	case chess.WhiteQueenside, chess.BlackQueenside:
		return chess.Pos('a', row), chess.Pos('d', row), nil
	default:
		return chess.Position{}, chess.Position{}, fmt.Errorf("castle %q: %w", move.Castle, errors.ErrInvalidNotation)
	}
}
