// Package config provides configuration for animalchess script replay.
package config

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/animalchess-go/internal/errors"
	"github.com/sirupsen/logrus"
)

// LogFormat selects the logrus formatter used by NewLogger.
type LogFormat string

const (
	TextFormat LogFormat = "text"
	JSONFormat LogFormat = "json"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=results only, 1=per-script summary, 2=running commentary
	Verbosity int

	// Logging
	LogLevel  string
	LogFormat LogFormat
	LogFile   io.Writer

	// Output
	OutputFile io.Writer
	ShowBoard  bool
	JSONOutput bool

	// Replay
	Workers      int
	EnforceTurns bool
	StopOnError  bool

	// Default names used when a script carries no player tags.
	Player0Name string
	Player1Name string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		LogLevel:     "warning",
		LogFormat:    TextFormat,
		LogFile:      os.Stderr,
		OutputFile:   os.Stdout,
		Workers:      runtime.NumCPU(),
		EnforceTurns: true,
		Player0Name:  "player 0",
		Player1Name:  "player 1",
	}
}

// Validate reports the first inconsistent setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	switch LogFormat(strings.ToLower(string(c.LogFormat))) {
	case TextFormat, JSONFormat:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", c.LogFormat)
	}
	if c.Player0Name == "" || c.Player1Name == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "player names must not be empty")
	}
	return nil
}
