package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// EnvPrefix is prepended to environment overrides, e.g.
// SUPERCHECKERS_LOG_LEVEL=debug.
const EnvPrefix = "SUPERCHECKERS"

// Load reads configuration from the file at path (YAML, JSON or TOML by
// extension) layered over the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("run.script", cfg.Run.ScriptPath)
	v.SetDefault("run.stop_on_error", cfg.Run.StopOnError)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.show_board", cfg.Output.ShowBoard)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
