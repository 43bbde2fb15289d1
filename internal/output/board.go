package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/engine"
)

const (
	boardFiles  = "  a b c d e f g h"
	boardBorder = " +-----------------+"
)

// BoardString renders the board as an ASCII diagram, rank 8 at the top.
// Empty squares are shown as '.'.
func BoardString(board chess.Board) string {
	pm := engine.BoardToPieceMap(board)

	var sb strings.Builder
	sb.WriteString(boardFiles + "\n")
	sb.WriteString(boardBorder + "\n")
	for row := chess.BoardSize; row >= 1; row-- {
		fmt.Fprintf(&sb, "%d| ", row)
		for col := 1; col <= chess.BoardSize; col++ {
			letter, err := engine.FigureToLetter(pm[row-1][col-1])
			if err != nil {
				letter = '.'
			}
			sb.WriteByte(letter)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(boardBorder + "\n")
	return sb.String()
}

// RenderBoard writes the ASCII diagram of board to w.
func RenderBoard(w io.Writer, board chess.Board) error {
	_, err := io.WriteString(w, BoardString(board))
	return err
}
