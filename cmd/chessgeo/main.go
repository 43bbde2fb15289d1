// chessgeo analyses chess positions: the pieces' legal moves, check,
// checkmate and stalemate. It reads FEN positions from the command line or
// from files, or serves the same analysis over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/output"
	"github.com/lgbarn/chessgeo-go/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgeo version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *serve {
		if err := runServer(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ov, err := parseOverrides(*epArg, *castlingArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs := flag.Args()
	if *inputFile != "" {
		inputs = append([]string{*inputFile}, inputs...)
	}

	if len(inputs) == 0 {
		if err := processSingle(cfg, ov); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	material, err := loadMaterialMatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx := &ProcessingContext{
		cfg:       cfg,
		overrides: ov,
		checker:   newChecker(cfg),
		material:  material,
	}

	items, err := readAllInputs(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	stats, err := processBatch(items, ctx, output.NewWriter(cfg.OutputFile, cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	reportStatistics(cfg, stats)
	if stats.Errors > 0 {
		os.Exit(2)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// runServer serves until the listener fails or the process is interrupted.
func runServer(cfg *config.Config) error {
	srv := server.New(cfg, server.NewStore())

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Listen()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errc:
		return err
	case s := <-sig:
		cfg.Logf(1, "received %s, shutting down", s)
		return srv.Shutdown()
	}
}

func reportStatistics(cfg *config.Config, stats BatchStats) {
	if stats.Filtered > 0 {
		cfg.Logf(1, "%d position(s) did not match the material balance.", stats.Filtered)
	}
	if cfg.Batch.SuppressDuplicates {
		cfg.Logf(1, "%d position(s) output, %d duplicate(s), %d error(s) out of %d.",
			stats.Output, stats.Duplicates, stats.Errors, stats.Total)
		return
	}
	cfg.Logf(1, "%d position(s) output, %d error(s) out of %d.", stats.Output, stats.Errors, stats.Total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgeo [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Analyse chess positions given in FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -board\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" -square e1\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -moves \"e2e4 e7e5 g1f3\" -J\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -D -workers 4 positions.fen\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -y KR:k endgames.fen\n")
	fmt.Fprintf(os.Stderr, "  chessgeo -serve -addr :9000\n")
}
