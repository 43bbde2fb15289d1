// Package output renders position analyses as text, ASCII boards and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/worker"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// SortedSquares returns the keys of moves ordered a1, b1, ... h8.
func SortedSquares(moves map[chess.Position][]chess.Move) []chess.Position {
	keys := maps.Keys(moves)
	order := make([]int, len(keys))
	for i, pos := range keys {
		row, col := engine.PositionToCoordinate(pos)
		order[i] = (row-1)*chess.BoardSize + col - 1
	}
	slices.Sort(order)

	squares := make([]chess.Position, len(order))
	for i, idx := range order {
		pos, _ := engine.CoordinateToPosition(idx%chess.BoardSize+1, idx/chess.BoardSize+1)
		squares[i] = pos
	}
	return squares
}

// FormatMoves joins the move texts with single spaces.
func FormatMoves(moves []chess.Move) string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return strings.Join(texts, " ")
}

// MoveText renders a move in long algebraic form: "e2-e4", "e5xd6".
func MoveText(from chess.Position, m chess.Move) string {
	sep := "-"
	if m.IsTaken {
		sep = "x"
	}
	return from.String() + sep + m.Position.String()
}

// OutputPosition writes the text report of one result.
func OutputPosition(r worker.ProcessResult, cfg *config.Config) {
	w := cfg.OutputFile

	if r.Line > 0 {
		fmt.Fprintf(w, "line %d: ", r.Line)
	}
	fmt.Fprintln(w, r.FEN)

	switch {
	case r.Error != nil:
		fmt.Fprintf(w, "  error: %v\n\n", r.Error)
		return
	case r.Duplicate:
		fmt.Fprint(w, "  duplicate position\n\n")
		return
	case r.Analysis == nil:
		fmt.Fprintln(w)
		return
	}

	a := r.Analysis
	fmt.Fprintf(w, "  %s to move, %s\n", a.Record.ActiveColour, a.Status)
	fmt.Fprintf(w, "  key %016x\n", a.Key)

	if cfg.Output.ShowBoard {
		fmt.Fprintln(w)
		for _, line := range strings.SplitAfter(BoardString(a.Board), "\n") {
			if line != "" {
				fmt.Fprint(w, "  "+line)
			}
		}
	}

	if cfg.Output.ShowMoves {
		fmt.Fprintf(w, "  legal moves (%d):\n", a.MoveCount())
		for _, from := range SortedSquares(a.Moves) {
			outputPieceMoves(w, a.Board, from, a.Moves[from])
		}
	}
	fmt.Fprintln(w)
}

func outputPieceMoves(w io.Writer, board chess.Board, from chess.Position, moves []chess.Move) {
	label := from.String()
	if p, ok := board.At(from); ok {
		if letter, err := engine.FigureToLetter(p); err == nil {
			label = string(letter) + label
		}
	}
	fmt.Fprintf(w, "    %-4s", label)
	ow := NewOutputWriter(w, 72, "        ")
	ow.lineLength = 8
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}
