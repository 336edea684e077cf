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

// From creates a ConfigBuilder that modifies an existing Config in place.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithScript sets the move script path.
func (b *ConfigBuilder) WithScript(path string) *ConfigBuilder {
	b.cfg.Run.ScriptPath = path
	return b
}

// WithStopOnError stops the run at the first rejected move.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Run.StopOnError = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithShowBoard toggles the final board rendering.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithOutputFile sets the report writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
