package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
	"github.com/lgbarn/animalchess-go/internal/errors"
)

const cfgFile = "animalchess/config.json"

// fileConfig is the on-disk form. Pointer fields distinguish absent keys
// from zero values.
type fileConfig struct {
	Verbosity    *int    `json:"verbosity"`
	LogLevel     *string `json:"log_level"`
	LogFormat    *string `json:"log_format"`
	Workers      *int    `json:"workers"`
	EnforceTurns *bool   `json:"enforce_turns"`
	ShowBoard    *bool   `json:"show_board"`
	JSONOutput   *bool   `json:"json_output"`
	StopOnError  *bool   `json:"stop_on_error"`
	Player0Name  *string `json:"player0"`
	Player1Name  *string `json:"player1"`
}

// Load returns the defaults overlaid with the user's config file, if one
// exists under the XDG config directories.
func Load() (*Config, error) {
	cfg := NewConfig()
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return cfg, cfg.Validate()
	}
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the JSON settings in path onto c and validates the result.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "read %s: %v", path, err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parse %s: %v", path, err)
	}
	fc.apply(c)
	return c.Validate()
}

func (fc *fileConfig) apply(c *Config) {
	if fc.Verbosity != nil {
		c.Verbosity = *fc.Verbosity
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		c.LogFormat = LogFormat(*fc.LogFormat)
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	if fc.EnforceTurns != nil {
		c.EnforceTurns = *fc.EnforceTurns
	}
	if fc.ShowBoard != nil {
		c.ShowBoard = *fc.ShowBoard
	}
	if fc.JSONOutput != nil {
		c.JSONOutput = *fc.JSONOutput
	}
	if fc.StopOnError != nil {
		c.StopOnError = *fc.StopOnError
	}
	if fc.Player0Name != nil {
		c.Player0Name = *fc.Player0Name
	}
	if fc.Player1Name != nil {
		c.Player1Name = *fc.Player1Name
	}
}
