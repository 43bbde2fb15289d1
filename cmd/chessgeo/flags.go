// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessgeo-go/internal/config"
)

var (
	// Position input
	fenArg      = flag.String("fen", "", "Position to analyse (default: starting position)")
	inputFile   = flag.String("i", "", "File of FEN lines to analyse ('-' for stdin)")
	squareArg   = flag.String("square", "", "Only list the moves of the piece on this square (e.g. e2)")
	epArg       = flag.String("ep", "", "Override the en passant column (a-h, a target square, or -)")
	castlingArg = flag.String("castling", "", "Override the castling rights (e.g. KQkq or -)")
	movesArg    = flag.String("moves", "", "Coordinate moves to play before analysing (e.g. \"e2e4 e7e5\")")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the board for each position")
	noMoves      = flag.Bool("nomoves", false, "Don't list legal moves")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	exactDuplicates    = flag.Bool("exact", false, "Positions are only duplicates when their move clocks match too")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Batch processing
	workers    = flag.Int("workers", 0, "Number of analysis workers (0 = one per CPU)")
	bufferSize = flag.Int("buffer", 0, "Work queue size (0 = twice the worker count)")

	// Server
	serve   = flag.Bool("serve", false, "Serve the HTTP and websocket API instead of analysing")
	addr    = flag.String("addr", ":8080", "Listen address for -serve")
	origins = flag.String("origins", "*", "Allowed CORS origins for -serve")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity (0 = silent, 1 = summary, 2 = per position)")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)
	applyServerFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSON = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowMoves = !*noMoves
}

func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.SuppressDuplicates = *suppressDuplicates
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *bufferSize > 0 {
		cfg.Batch.BufferSize = *bufferSize
	}
}

func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
}
