// animalchess replays animal shogi move scripts and reports the outcome of each.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/animalchess-go/internal/config"
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
		fmt.Printf("animalchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg, visitedFlags())
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.NewLogger()

	paths := flag.Args()
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(2)
		}
		paths = append(paths, listed...)
	}

	results := replayInputs(paths, os.Stdin, cfg, logger)
	failed, err := reportResults(results, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(2)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// loadConfig reads the -config file if given, otherwise the XDG config.
func loadConfig() *config.Config {
	if *configFile != "" {
		cfg := config.NewConfig()
		if err := cfg.LoadFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		return cfg
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func loadFileList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readFileList(f)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := openOutput(*logFile, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(2)
		}
		cfg.LogFile = file
	}
	if *appendLog != "" {
		file, err := openOutput(*appendLog, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(2)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := openOutput(*outputFile, *appendOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(2)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: animalchess [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays animal shogi move scripts and reports the winner of each.\n")
	fmt.Fprintf(os.Stderr, "Reads a single script from stdin when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  [Player0 \"name\"]   optional tags before the first move\n")
	fmt.Fprintf(os.Stderr, "  1. c3-c4 c4xc3     board moves; move numbers are ignored\n")
	fmt.Fprintf(os.Stderr, "  H*b4               drop a Chick (L, D, C, H) from hand\n")
	fmt.Fprintf(os.Stderr, "  # comment          to end of line\n")
}
