// Package processing provides position analysis, validation and replay.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/game"
	"github.com/lgbarn/chessgeo-go/internal/hashing"
)

// PositionAnalysis holds what is known about a single FEN position.
type PositionAnalysis struct {
	FEN     string
	Record  fen.Record
	Board   chess.Board
	Key     uint64 // Zobrist key
	Checked bool
	Status  game.Status
	// Moves holds the legal moves of each piece of the side to move that
	// has at least one.
	Moves map[chess.Position][]chess.Move
}

// MoveCount returns the total number of legal moves.
func (pa *PositionAnalysis) MoveCount() int {
	n := 0
	for _, moves := range pa.Moves {
		n += len(moves)
	}
	return n
}

// AnalyzePosition parses text and reports check state and legal moves for
// the side to move.
func AnalyzePosition(text string) (*PositionAnalysis, error) {
	rec, err := fen.Parse(text)
	if err != nil {
		return nil, err
	}
	g, err := game.FromFEN(text)
	if err != nil {
		return nil, err
	}
	board := g.Board()

	checked, err := engine.IsKingChecked(board, rec.ActiveColour)
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: text}
	}
	status, err := g.Status()
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: text}
	}
	moves, err := g.AllLegalMoves()
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: text}
	}

	return &PositionAnalysis{
		FEN:     g.FEN(),
		Record:  rec,
		Board:   board,
		Key:     hashing.GenerateZobristHash(board, rec),
		Checked: checked,
		Status:  status,
		Moves:   moves,
	}, nil
}

// SquareMoves returns the moves the engine generates for the piece on square,
// using the en passant column and castling rights recorded in text.
func SquareMoves(text string, square chess.Position) ([]chess.Move, error) {
	rec, err := fen.Parse(text)
	if err != nil {
		return nil, err
	}
	board, err := engine.BuildBoard(text)
	if err != nil {
		return nil, err
	}
	moves, err := engine.LegalMovesForPiece(board, square, rec.EnPassant, rec.Castling)
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: text, Square: square.String()}
	}
	return moves, nil
}

// ValidationResult holds the result of replay validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// ReplayAnalysis holds what was observed while replaying moves.
type ReplayAnalysis struct {
	Game      *game.Game
	Positions []uint64 // Zobrist keys, start position first
}

// ReplayMoves plays coordinate moves such as "e2e4" from the start position.
// Replay stops at the first illegal move, which the validation result names.
func ReplayMoves(start string, moves []string) (*ReplayAnalysis, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	g, err := game.FromFEN(start)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid FEN: %v", err)
		return nil, result
	}

	analysis := &ReplayAnalysis{Game: g}
	record := func() error {
		rec, err := fen.Parse(g.FEN())
		if err != nil {
			return err
		}
		analysis.Positions = append(analysis.Positions, hashing.GenerateZobristHash(g.Board(), rec))
		return nil
	}
	if err := record(); err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		return analysis, result
	}

	for i, text := range moves {
		ply := i + 1
		from, to, err := parseCoordinateMove(text)
		if err == nil {
			_, err = g.Move(from, to)
		}
		if err == nil {
			err = record()
		}
		if err != nil {
			result.Valid = false
			result.ErrorPly = ply
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s: %v", ply, text, err)
			return analysis, result
		}
	}
	return analysis, result
}

func parseCoordinateMove(text string) (from, to chess.Position, err error) {
	if len(text) != 4 {
		return from, to, errors.Wrapf(errors.ErrInvalidCoordinate, "move %q", text)
	}
	if from, err = chess.ParsePosition(text[:2]); err != nil {
		return from, to, err
	}
	to, err = chess.ParsePosition(text[2:])
	return from, to, err
}
