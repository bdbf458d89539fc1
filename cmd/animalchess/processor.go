package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/animalchess-go/internal/config"
	"github.com/lgbarn/animalchess-go/internal/output"
	"github.com/lgbarn/animalchess-go/internal/processing"
	"github.com/lgbarn/animalchess-go/internal/worker"
)

// readFileList reads script paths from r, one per line. Blank lines and
// lines starting with # are skipped.
func readFileList(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, scanner.Err()
}

// replayInputs replays the named files, or stdin when there are none.
func replayInputs(paths []string, stdin io.Reader, cfg *config.Config, logger logrus.FieldLogger) []processing.Result {
	if len(paths) == 0 {
		return []processing.Result{processing.ReplayReader(stdin, "stdin", cfg, logger)}
	}
	items := make([]worker.WorkItem, len(paths))
	for i, p := range paths {
		items[i] = worker.WorkItem{Index: i, Path: p}
	}
	return worker.ReplayAll(items, cfg, logger)
}

// reportResults writes the results to cfg.OutputFile and returns the
// number of failed scripts. In text mode failures are reported even when
// silent.
func reportResults(results []processing.Result, cfg *config.Config) (int, error) {
	var w output.ResultWriter
	if cfg.JSONOutput {
		w = output.NewJSONWriter(cfg.OutputFile, cfg.ShowBoard)
	} else {
		w = output.NewTextWriter(cfg.OutputFile, cfg.ShowBoard)
	}

	failed, decided := 0, 0
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			failed++
		} else if r.Decided() {
			decided++
		}
		if !cfg.JSONOutput && cfg.Verbosity == 0 && r.Err == nil {
			continue
		}
		if err := w.WriteResult(r); err != nil {
			return failed, err
		}
	}
	if err := w.Close(); err != nil {
		return failed, err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(os.Stderr, "%d script(s), %d decided, %d failed.\n", len(results), decided, failed)
	}
	return failed, nil
}

// openOutput opens path for writing, appending when requested.
func openOutput(path string, appendMode bool) (*os.File, error) {
	if appendMode {
		return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: user-created output
	}
	return os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
}
