package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/game"
	"github.com/lgbarn/chessgeo-go/internal/processing"
	"github.com/lgbarn/chessgeo-go/internal/worker"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Index     int              `json:"index"`
	Line      int              `json:"line,omitempty"`
	FEN       string           `json:"fen"`
	Turn      string           `json:"turn,omitempty"`
	Castling  string           `json:"castling,omitempty"`
	EnPassant string           `json:"enPassant,omitempty"`
	Key       string           `json:"key,omitempty"`
	Check     bool             `json:"check"`
	Status    *game.Status     `json:"status,omitempty"`
	Board     []string         `json:"board,omitempty"`
	MoveCount int              `json:"moveCount"`
	Pieces    []JSONPieceMoves `json:"pieces,omitempty"`
	Duplicate bool             `json:"duplicate,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// JSONPieceMoves lists the moves of one piece.
type JSONPieceMoves struct {
	Square string     `json:"square"`
	Piece  string     `json:"piece"`
	Colour string     `json:"colour"`
	Moves  []JSONMove `json:"moves"`
}

// JSONMove represents a single generated move in JSON format.
type JSONMove struct {
	To        string `json:"to"`
	Text      string `json:"text"`
	Capture   bool   `json:"capture,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Castle    string `json:"castle,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// MoveToJSON converts a move.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		To:        m.Position.String(),
		Text:      m.String(),
		Capture:   m.IsTaken,
		EnPassant: m.IsTakenEnPassant,
	}
	if m.IsCastle() {
		jm.Castle = string(m.Castle)
	}
	return jm
}

// MovesToJSON converts a move list. The result is never nil.
func MovesToJSON(moves []chess.Move) []JSONMove {
	out := make([]JSONMove, len(moves))
	for i, m := range moves {
		out[i] = MoveToJSON(m)
	}
	return out
}

// PieceMovesToJSON converts a per-square move map, ordered a1 to h8.
func PieceMovesToJSON(board chess.Board, moves map[chess.Position][]chess.Move) []JSONPieceMoves {
	out := make([]JSONPieceMoves, 0, len(moves))
	for _, from := range SortedSquares(moves) {
		p, _ := board.At(from)
		out = append(out, JSONPieceMoves{
			Square: from.String(),
			Piece:  strings.ToLower(p.Figure.String()),
			Colour: p.Colour.String(),
			Moves:  MovesToJSON(moves[from]),
		})
	}
	return out
}

// AnalysisToJSON converts an analysis. The board is included when showBoard
// is set and the per-piece moves when showMoves is set.
func AnalysisToJSON(a *processing.PositionAnalysis, showBoard, showMoves bool) *JSONPosition {
	status := a.Status
	jp := &JSONPosition{
		FEN:       a.FEN,
		Turn:      a.Record.ActiveColour.String(),
		Castling:  a.Record.Castling.String(),
		EnPassant: a.Record.EnPassant.String(),
		Key:       fmt.Sprintf("%016x", a.Key),
		Check:     a.Checked,
		Status:    &status,
		MoveCount: a.MoveCount(),
	}
	if showBoard {
		jp.Board = engine.PlacementRanks(a.Board)
	}
	if showMoves {
		jp.Pieces = PieceMovesToJSON(a.Board, a.Moves)
	}
	return jp
}

// ResultToJSON converts a worker result.
func ResultToJSON(r worker.ProcessResult, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{FEN: r.FEN}
	if r.Analysis != nil {
		jp = AnalysisToJSON(r.Analysis, cfg.Output.ShowBoard, cfg.Output.ShowMoves)
	}
	jp.Index = r.Index
	jp.Line = r.Line
	jp.Duplicate = r.Duplicate
	if r.Error != nil {
		jp.Error = r.Error.Error()
	}
	return jp
}

// OutputPositionJSON outputs a single result in JSON format.
func OutputPositionJSON(r worker.ProcessResult, cfg *config.Config) error {
	enc := json.NewEncoder(cfg.OutputFile)
	enc.SetIndent("", "  ")
	return enc.Encode(ResultToJSON(r, cfg))
}

// OutputPositionsJSON outputs multiple results as a JSON array.
func OutputPositionsJSON(results []worker.ProcessResult, cfg *config.Config, w io.Writer) error {
	positions := make([]*JSONPosition, len(results))
	for i, r := range results {
		positions[i] = ResultToJSON(r, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Positions: positions})
}
