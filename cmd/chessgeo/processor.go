package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessgeo-go/internal/chess"
	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/engine"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/hashing"
	"github.com/lgbarn/chessgeo-go/internal/matching"
	"github.com/lgbarn/chessgeo-go/internal/output"
	"github.com/lgbarn/chessgeo-go/internal/processing"
	"github.com/lgbarn/chessgeo-go/internal/server"
	"github.com/lgbarn/chessgeo-go/internal/worker"
)

// Overrides replaces fields of every input position before analysis.
type Overrides struct {
	EnPassant *chess.EnPassantColumn
	Castling  *chess.CastlingRights
}

// parseOverrides reads the -ep and -castling values. Empty strings leave
// the position's own fields alone.
func parseOverrides(ep, castling string) (Overrides, error) {
	var ov Overrides
	if ep != "" {
		col, err := chess.ParseEnPassantColumn(ep)
		if err != nil {
			return ov, err
		}
		ov.EnPassant = &col
	}
	if castling != "" {
		rights, err := chess.ParseCastlingRights(castling)
		if err != nil {
			return ov, err
		}
		ov.Castling = &rights
	}
	return ov, nil
}

// Apply returns text with the overridden fields replaced.
func (ov Overrides) Apply(text string) (string, error) {
	if ov.EnPassant == nil && ov.Castling == nil {
		return text, nil
	}
	rec, err := fen.Parse(text)
	if err != nil {
		return "", err
	}
	if ov.Castling != nil {
		rec.Castling = *ov.Castling
	}
	if ov.EnPassant != nil {
		rec.EnPassant = *ov.EnPassant
		rec.EnPassantTarget = "-"
		if rec.EnPassant.Available() {
			row := 3
			if rec.ActiveColour == chess.White {
				row = 6
			}
			rec.EnPassantTarget = fmt.Sprintf("%c%d", rec.EnPassant, row)
		}
	}
	return rec.String(), nil
}

// readPositions reads one FEN per line. Blank lines and lines starting
// with '#' are skipped. Indexes continue from first.
func readPositions(r io.Reader, first int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{FEN: text, Index: first + len(items), Line: line})
	}
	return items, scanner.Err()
}

// readAllInputs collects positions from -i and the remaining arguments.
func readAllInputs(files []string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	for _, name := range files {
		more, err := readInput(name, len(items))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		items = append(items, more...)
	}
	return items, nil
}

func readInput(name string, first int) ([]worker.WorkItem, error) {
	if name == "-" {
		return readPositions(os.Stdin, first)
	}
	file, err := os.Open(name) //nolint:gosec // G304: reading user-specified input files is intended
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readPositions(file, first)
}

// analyzeItem is the per-position work done by each pool worker.
func analyzeItem(item worker.WorkItem, ov Overrides) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Line: item.Line, FEN: item.FEN}
	text, err := ov.Apply(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}
	result.FEN = text
	result.Analysis, result.Error = processing.AnalyzePosition(text)
	return result
}

// analyzeAll analyses items on a worker pool and returns the results in
// input order. Items must be indexed 0..len(items)-1.
func analyzeAll(items []worker.WorkItem, cfg *config.Config, ov Overrides) []worker.ProcessResult {
	numWorkers := cfg.Batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := cfg.Batch.BufferSize
	if bufferSize == 0 {
		bufferSize = numWorkers * 2
	}
	cfg.Logf(2, "analysing %d position(s) on %d worker(s)", len(items), numWorkers)
	return worker.Run(items, numWorkers, bufferSize, func(item worker.WorkItem) worker.ProcessResult {
		return analyzeItem(item, ov)
	})
}

// ProcessingContext holds what every position of a batch is run through.
type ProcessingContext struct {
	cfg       *config.Config
	overrides Overrides
	checker   hashing.DuplicateChecker  // nil unless -D
	material  *matching.MaterialMatcher // nil unless -z or -y
}

// BatchStats counts what happened to the positions of a batch.
type BatchStats struct {
	Total      int
	Output     int
	Duplicates int
	Filtered   int
	Errors     int
}

// processBatch analyses items and writes every kept result to w.
// Duplicates are decided in input order so the output does not depend on
// worker scheduling.
func processBatch(items []worker.WorkItem, ctx *ProcessingContext, w output.PositionWriter) (BatchStats, error) {
	cfg := ctx.cfg
	stats := BatchStats{Total: len(items)}

	for _, result := range analyzeAll(items, cfg, ctx.overrides) {
		switch {
		case result.Error != nil:
			stats.Errors++
			cfg.Logf(2, "line %d: %v", result.Line, result.Error)
		case ctx.material != nil && !ctx.material.MatchPosition(result.Analysis.Board):
			stats.Filtered++
			continue
		case ctx.checker != nil && ctx.checker.CheckAndAdd(result.Analysis.Board, result.Analysis.Record):
			result.Duplicate = true
			result.Analysis = nil
			stats.Duplicates++
		default:
			stats.Output++
		}
		if err := w.WritePosition(result); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}

// newChecker returns the duplicate checker selected by the flags, or nil.
func newChecker(cfg *config.Config) hashing.DuplicateChecker {
	if !cfg.Batch.SuppressDuplicates {
		return nil
	}
	return hashing.NewDuplicateDetector(*exactDuplicates, *duplicateCapacity)
}

// loadMaterialMatcher creates a material matcher if specified.
func loadMaterialMatcher() (*matching.MaterialMatcher, error) {
	switch {
	case *materialMatchExact != "":
		return matching.NewMaterialMatcher(*materialMatchExact, true)
	case *materialMatch != "":
		return matching.NewMaterialMatcher(*materialMatch, false)
	default:
		return nil, nil
	}
}

// positionFromFlags returns the position named by -fen, played forward
// through -moves.
func positionFromFlags(cfg *config.Config) (string, error) {
	start := *fenArg
	if start == "" {
		start = fen.InitialPosition
	}
	if strings.TrimSpace(*movesArg) == "" {
		return start, nil
	}

	moves := strings.FieldsFunc(*movesArg, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	replay, validation := processing.ReplayMoves(start, moves)
	if !validation.Valid {
		return "", fmt.Errorf("%s", validation.ErrorMsg)
	}
	cfg.Logf(2, "played %d move(s)", len(moves))
	return replay.Game.FEN(), nil
}

// processSingle reports one position from the command line.
func processSingle(cfg *config.Config, ov Overrides) error {
	text, err := positionFromFlags(cfg)
	if err != nil {
		return err
	}
	text, err = ov.Apply(text)
	if err != nil {
		return err
	}

	if *squareArg != "" {
		return outputSquare(cfg, text, *squareArg)
	}

	analysis, err := processing.AnalyzePosition(text)
	if err != nil {
		return err
	}
	w := output.NewWriter(cfg.OutputFile, cfg)
	if cfg.Output.JSON {
		w = output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	}
	if err := w.WritePosition(worker.ProcessResult{FEN: text, Analysis: analysis}); err != nil {
		return err
	}
	return w.Close()
}

// outputSquare lists the moves of one piece, without filtering pins.
func outputSquare(cfg *config.Config, text, square string) error {
	pos, err := chess.ParsePosition(square)
	if err != nil {
		return err
	}
	moves, err := processing.SquareMoves(text, pos)
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(server.SquareMovesResponse{Square: pos.String(), Moves: output.MovesToJSON(moves)})
	}

	board, err := engine.BuildBoard(text)
	if err != nil {
		return err
	}
	label := pos.String()
	if p, ok := board.At(pos); ok {
		label = fmt.Sprintf("%s %s on %s", p.Colour, strings.ToLower(p.Figure.String()), pos)
	}
	fmt.Fprintf(cfg.OutputFile, "%s: %d move(s)\n", label, len(moves))
	for _, m := range moves {
		fmt.Fprintf(cfg.OutputFile, "  %s\n", output.MoveText(pos, m))
	}
	return nil
}
