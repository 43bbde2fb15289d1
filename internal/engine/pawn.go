package engine

import "github.com/lgbarn/chessgeo-go/internal/chess"

// pawnForward returns the row step of a pawn of the given colour.
func pawnForward(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

// pawnStartRow is the row a pawn may double-push from.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 2
	}
	return 7
}

// enPassantRow is the row a pawn must stand on to capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 5
	}
	return 4
}

// PawnMoves returns the moves of the pawn on from.
// Candidates come in a fixed order: push, capture towards the h-file,
// capture towards the a-file, then the double push. A capture onto an empty
// square is offered only as an en passant capture on file ep.
// Promotion is not generated: a pawn on its last row has no moves.
func PawnMoves(board chess.Board, from chess.Position, ep chess.EnPassantColumn) ([]chess.Move, error) {
	p, err := pieceOn(board, from)
	if err != nil {
		return nil, err
	}

	cm := BoardToColorMap(board)
	row, col := PositionToCoordinate(from)
	fwd := pawnForward(p.Colour)
	ahead := row + fwd

	var moves []chess.Move
	if inBounds(ahead, col) && cm[ahead-1][col-1] == chess.NoColour {
		moves = append(moves, chess.Move{Position: coordinate(ahead, col)})
	}

	for _, dc := range []int{1, -1} {
		c := col + dc
		if !inBounds(ahead, c) {
			continue
		}
		switch occupant := cm[ahead-1][c-1]; {
		case occupant == p.Colour.Opposite():
			moves = append(moves, chess.Move{Position: coordinate(ahead, c), IsTaken: true})
		case occupant == chess.NoColour && row == enPassantRow(p.Colour) && EnPassantColumnToIndex(ep) == c:
			moves = append(moves, chess.Move{Position: coordinate(ahead, c), IsTaken: true, IsTakenEnPassant: true})
		}
	}

	if row == pawnStartRow(p.Colour) {
		twoAhead := ahead + fwd
		if cm[ahead-1][col-1] == chess.NoColour && cm[twoAhead-1][col-1] == chess.NoColour {
			moves = append(moves, chess.Move{Position: coordinate(twoAhead, col)})
		}
	}

	return moves, nil
}
