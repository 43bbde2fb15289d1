package engine

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// LegalMovesForPiece returns the moves of the piece on from.
//
// While its king is checked a piece other than the king gets no moves at all,
// even one that would capture or block the checking piece. The en passant
// column and castling rights are owned by the caller and only read here.
func LegalMovesForPiece(board chess.Board, from chess.Position, ep chess.EnPassantColumn, rights chess.CastlingRights) ([]chess.Move, error) {
	p, err := pieceOn(board, from)
	if err != nil {
		return nil, err
	}

	if p.Figure != chess.King {
		checked, err := IsKingChecked(board, p.Colour)
		if err != nil {
			return nil, err
		}
		if checked {
			return []chess.Move{}, nil
		}
	}

	switch p.Figure {
	case chess.Pawn:
		return PawnMoves(board, from, ep)
	case chess.Knight:
		return KnightMoves(board, from)
	case chess.Bishop:
		return BishopMoves(board, from)
	case chess.Rook:
		return RookMoves(board, from)
	case chess.Queen:
		return QueenMoves(board, from)
	case chess.King:
		return KingMoves(board, from, rights)
	default:
		return nil, fmt.Errorf("%s holds %v: %w", from, p, errors.ErrInvalidPiece)
	}
}

// LegalMovesForColour returns the moves of every piece of colour, keyed by
// the square the piece stands on. Pieces without moves are omitted.
func LegalMovesForColour(board chess.Board, colour chess.Colour, ep chess.EnPassantColumn, rights chess.CastlingRights) (map[chess.Position][]chess.Move, error) {
	if _, ok := board.FindKing(colour); !ok {
		return nil, fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
	}

	out := make(map[chess.Position][]chess.Move)
	for _, sq := range board.Squares() {
		if sq.Colour != colour {
			continue
		}
		moves, err := LegalMovesForPiece(board, sq.Position, ep, rights)
		if err != nil {
			return nil, err
		}
		if len(moves) > 0 {
			out[sq.Position] = moves
		}
	}
	return out, nil
}
