package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/super-checkers-go/internal/errors"
	"github.com/lgbarn/super-checkers-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Run.ScriptPath != "" {
		t.Errorf("ScriptPath = %q, want empty", cfg.Run.ScriptPath)
	}
	if cfg.Run.StopOnError {
		t.Error("StopOnError should be false by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want console", cfg.Log.Format)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfig_Validate verifies validation of each section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"debug json logging", func(c *Config) { c.Log.Level = "debug"; c.Log.Format = "json" }, false},
		{"logging off", func(c *Config) { c.Log.Level = "none" }, false},
		{"json report", func(c *Config) { c.Output.Format = "json" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "logfmt" }, true},
		{"unknown report format", func(c *Config) { c.Output.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestValidate_ErrorMessage(t *testing.T) {
	cfg := NewConfig()
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	want := `output format "xml" (want one of [text json]): invalid configuration`
	if err == nil || err.Error() != want {
		t.Errorf("Validate() error = %v, want %q", err, want)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

// TestLoad_File verifies values are read from YAML and JSON files
func TestLoad_File(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "config.yaml",
			content: `
run:
  script: moves.yaml
  stop_on_error: true
log:
  level: debug
  format: json
output:
  format: json
  show_board: false
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{
  "run": {"script": "moves.yaml", "stop_on_error": true},
  "log": {"level": "debug", "format": "json"},
  "output": {"format": "json", "show_board": false}
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, cfg.Run, RunConfig{ScriptPath: "moves.yaml", StopOnError: true})
			testutil.AssertEqual(t, cfg.Log, LogConfig{Level: "debug", Format: "json"})
			testutil.AssertEqual(t, cfg.Output, OutputConfig{Format: "json", ShowBoard: false})
		})
	}
}

// TestLoad_PartialFile verifies unspecified keys keep their defaults
func TestLoad_PartialFile(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", "log:\n  level: error\n"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Log.Level, "error")
	testutil.AssertEqual(t, cfg.Log.Format, "console")
	testutil.AssertEqual(t, cfg.Output.ShowBoard, true)
}

// TestLoad_Env verifies SUPERCHECKERS_ environment overrides
func TestLoad_Env(t *testing.T) {
	t.Setenv("SUPERCHECKERS_LOG_LEVEL", "info")
	t.Setenv("SUPERCHECKERS_RUN_STOP_ON_ERROR", "true")

	cfg, err := Load("")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Log.Level, "info")
	testutil.AssertEqual(t, cfg.Run.StopOnError, true)
}

// TestLoad_Errors verifies missing files and invalid values are reported
func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	_, err := Load(writeFile(t, "config.yaml", "output:\n  format: xml\n"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := NewConfigBuilder().
		WithScript("game.yaml").
		WithStopOnError(true).
		WithLogLevel("debug").
		WithLogFormat("json").
		WithOutputFormat("json").
		WithShowBoard(false).
		WithOutputFile(&out).
		WithLogFile(&logs).
		Build()

	testutil.AssertEqual(t, cfg.Run, RunConfig{ScriptPath: "game.yaml", StopOnError: true})
	testutil.AssertEqual(t, cfg.Log, LogConfig{Level: "debug", Format: "json"})
	testutil.AssertEqual(t, cfg.Output, OutputConfig{Format: "json"})
	if cfg.OutputFile != &out || cfg.LogFile != &logs {
		t.Error("builder did not set the streams")
	}

	base := NewConfig()
	if From(base).WithLogLevel("error").Build() != base {
		t.Error("From() should modify the given config")
	}
	testutil.AssertEqual(t, base.Log.Level, "error")
}

// TestNewLogger verifies encoder selection and level filtering
func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := NewConfigBuilder().WithLogLevel("info").WithLogFormat("json").WithLogFile(&buf).Build()

		logger, err := NewLogger(cfg)
		testutil.AssertNoError(t, err)
		logger.Debug("hidden")
		logger.Info("move rejected")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("debug entry written at info level: %s", out)
		}
		if !strings.Contains(out, `"msg":"move rejected"`) {
			t.Errorf("json entry missing: %s", out)
		}
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := NewConfigBuilder().WithLogLevel("debug").WithLogFile(&buf).Build()

		logger, err := NewLogger(cfg)
		testutil.AssertNoError(t, err)
		logger.Debug("action applied")

		if !strings.Contains(buf.String(), "DEBUG") || !strings.Contains(buf.String(), "action applied") {
			t.Errorf("console entry = %q", buf.String())
		}
	})

	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := NewConfigBuilder().WithLogLevel("none").WithLogFile(&buf).Build()

		logger, err := NewLogger(cfg)
		testutil.AssertNoError(t, err)
		logger.Error("dropped")
		if buf.Len() != 0 {
			t.Errorf("no-op logger wrote %q", buf.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := NewConfigBuilder().WithLogLevel("loud").Build()
		_, err := NewLogger(cfg)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	})
}
