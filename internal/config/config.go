// Package config provides configuration for the super-checkers CLI.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Run    RunConfig    `mapstructure:"run"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`

	// Output streams
	OutputFile io.Writer `mapstructure:"-"`
	LogFile    io.Writer `mapstructure:"-"`
}

// RunConfig selects the move script and how rejections are handled.
type RunConfig struct {
	ScriptPath  string `mapstructure:"script"`        // empty plays the built-in demonstration game
	StopOnError bool   `mapstructure:"stop_on_error"` // stop at the first rejected move
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:        *NewLogConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section and reports the first invalid value.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

func invalid(field, value string, allowed []string) error {
	return errors.Wrapf(errors.ErrInvalidConfig, "%s %q (want one of %v)", field, value, allowed)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
