package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error", "none"}
	logFormats = []string{"console", "json"}
)

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error or none
	Format string `mapstructure:"format"` // console or json
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: "console",
	}
}

// Validate checks the level and encoder names.
func (c *LogConfig) Validate() error {
	if !contains(logLevels, c.Level) {
		return invalid("log level", c.Level, logLevels)
	}
	if !contains(logFormats, c.Format) {
		return invalid("log format", c.Format, logFormats)
	}
	return nil
}

// NewLogger builds the zap logger described by cfg, writing to cfg.LogFile.
// Level "none" yields a no-op logger.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	if cfg.Log.Level == "none" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Log.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.LogFile), level)
	return zap.New(core), nil
}
