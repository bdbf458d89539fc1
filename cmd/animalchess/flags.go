// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/animalchess-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	showBoard    = flag.Bool("board", false, "Print the final board after each result")
	jsonOutput   = flag.Bool("J", false, "Output results as JSON")
	quiet        = flag.Bool("s", false, "Silent mode (report failures only)")
	verbose      = flag.Bool("v", false, "Print totals after all results")

	// Replay options
	noTurns     = flag.Bool("noturns", false, "Do not enforce alternating turns")
	stopOnError = flag.Bool("stoponerror", false, "Stop after the first failing script")
	player0     = flag.String("p0", "", "Default name for player 0")
	player1     = flag.String("p1", "", "Default name for player 1")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	logLevel  = flag.String("loglevel", "", "Log level: panic, fatal, error, warning, info, debug, trace")
	logFormat = flag.String("logformat", "", "Log format: text or json")

	// Input options
	fileListFile = flag.String("f", "", "File containing list of script files (one per line)")
	configFile   = flag.String("config", "", "Config file (default: search XDG config dirs)")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = config value or CPU count)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags over the loaded configuration.
// Only flags that were given override the config file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyOutputFlags(cfg, set)
	applyReplayFlags(cfg, set)
	applyLogFlags(cfg, set)

	if *workers > 0 {
		cfg.Workers = *workers
	}
}

func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["board"] {
		cfg.ShowBoard = *showBoard
	}
	if set["J"] {
		cfg.JSONOutput = *jsonOutput
	}
	if *quiet {
		cfg.Verbosity = 0
	} else if *verbose {
		cfg.Verbosity = 2
	}
}

func applyReplayFlags(cfg *config.Config, set map[string]bool) {
	if set["noturns"] {
		cfg.EnforceTurns = !*noTurns
	}
	if set["stoponerror"] {
		cfg.StopOnError = *stopOnError
	}
	if *player0 != "" {
		cfg.Player0Name = *player0
	}
	if *player1 != "" {
		cfg.Player1Name = *player1
	}
}

func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = config.LogFormat(*logFormat)
	}
}

// visitedFlags returns the names of flags given on the command line.
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
