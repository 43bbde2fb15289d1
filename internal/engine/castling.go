package engine

import "github.com/lgbarn/chessgeo-go/internal/chess"

// castleSide describes the squares involved in one castling move.
type castleSide struct {
	letter func(chess.Colour) chess.CastlingLetter
	rook   chess.Column   // rook home corner
	target chess.Column   // king destination
	empty  []chess.Column // must be unoccupied
	safe   []chess.Column // must not be attacked, besides the king's own square
}

var castleSides = []castleSide{
	{
		letter: chess.KingsideLetter,
		rook:   'h',
		target: 'g',
		empty:  []chess.Column{'f', 'g'},
		safe:   []chess.Column{'f', 'g'},
	},
	{
		letter: chess.QueensideLetter,
		rook:   'a',
		target: 'c',
		empty:  []chess.Column{'d', 'c', 'b'},
		safe:   []chess.Column{'d', 'c'},
	},
}

// homeRow is the back rank of colour.
func homeRow(colour chess.Colour) chess.Row {
	if colour == chess.White {
		return chess.FirstRow
	}
	return chess.LastRow
}

// KingMoves returns the moves of the king on from: every adjacent square that
// is not held by its own side and would not be attacked once the king stands
// there, plus any castling move permitted by rights.
func KingMoves(board chess.Board, from chess.Position, rights chess.CastlingRights) ([]chess.Move, error) {
	king, err := pieceOn(board, from)
	if err != nil {
		return nil, err
	}

	cm := BoardToColorMap(board)
	// Without the king on from, rays through from reach the squares beyond it.
	lifted := BoardToPieceMap(board.Without(from))

	var moves []chess.Move
	for _, m := range stepTo(cm, from, king.Colour, allDirs) {
		if !isAttacked(lifted, m.Position, king.Colour) {
			moves = append(moves, m)
		}
	}

	if isAttacked(lifted, from, king.Colour) {
		return moves, nil
	}
	return append(moves, castlingMoves(board, lifted, from, king.Colour, rights)...), nil
}

// castlingMoves returns the castling moves available to an unchecked king.
// Rights are trusted as given; only the physical setup is checked here.
func castlingMoves(board chess.Board, lifted chess.BoardPieceMap, from chess.Position, colour chess.Colour, rights chess.CastlingRights) []chess.Move {
	row := homeRow(colour)
	if from != chess.Pos('e', row) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		letter := side.letter(colour)
		if !rights.Has(letter) {
			continue
		}
		if rook, ok := board.At(chess.Pos(side.rook, row)); !ok || !rook.Is(chess.Rook, colour) {
			continue
		}
		if !castlePathClear(board, lifted, row, colour, side) {
			continue
		}
		moves = append(moves, chess.Move{Position: chess.Pos(side.target, row), Castle: letter})
	}
	return moves
}

func castlePathClear(board chess.Board, lifted chess.BoardPieceMap, row chess.Row, colour chess.Colour, side castleSide) bool {
	for _, c := range side.empty {
		if _, occupied := board.At(chess.Pos(c, row)); occupied {
			return false
		}
	}
	for _, c := range side.safe {
		if isAttacked(lifted, chess.Pos(c, row), colour) {
			return false
		}
	}
	return true
}
