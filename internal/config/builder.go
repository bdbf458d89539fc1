package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONOutput = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogLevel sets the logrus level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFormat sets the log formatter.
func (b *ConfigBuilder) WithLogFormat(format LogFormat) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithWorkers sets the number of concurrent replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// EnforceTurns controls whether replay rejects moves out of turn.
func (b *ConfigBuilder) EnforceTurns(enforce bool) *ConfigBuilder {
	b.cfg.EnforceTurns = enforce
	return b
}

// ShowBoard controls whether the final board is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.ShowBoard = show
	return b
}

// StopOnError controls whether processing halts after the first failed script.
func (b *ConfigBuilder) StopOnError(stop bool) *ConfigBuilder {
	b.cfg.StopOnError = stop
	return b
}

// WithPlayerNames sets the default player names.
func (b *ConfigBuilder) WithPlayerNames(p0, p1 string) *ConfigBuilder {
	b.cfg.Player0Name = p0
	b.cfg.Player1Name = p1
	return b
}
