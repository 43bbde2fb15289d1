package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/fen"
)

// PlacementRanks encodes the board as FEN ranks, rank 8 first.
func PlacementRanks(board chess.Board) []string {
	pm := BoardToPieceMap(board)
	ranks := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize; row >= 1; row-- {
		var sb strings.Builder
		empty := 0
		for col := 1; col <= chess.BoardSize; col++ {
			p := pm[row-1][col-1]
			letter, err := FigureToLetter(p)
			if err != nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks = append(ranks, sb.String())
	}
	return ranks
}

// PlacementFromBoard returns the FEN piece placement field of the board.
func PlacementFromBoard(board chess.Board) string {
	return strings.Join(PlacementRanks(board), "/")
}

// BoardToFEN returns a full FEN string: the board's placement followed by
// the other five fields of state.
func BoardToFEN(board chess.Board, state fen.Record) string {
	state.Ranks = PlacementRanks(board)
	return state.String()
}
