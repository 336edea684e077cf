// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"

	"github.com/lgbarn/super-checkers-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	configFile  string
	scriptFile  string
	logLevel    string
	logFormat   string
	output      string
	stopOnError bool
	showBoard   bool
	workers     int
	notation    bool
	version     bool
	help        bool
}

// newFlagSet defines every flag on a fresh FlagSet bound to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Input
	fs.StringVar(&opts.configFile, "config", "", "Configuration file (yaml, json or toml)")
	fs.StringVar(&opts.scriptFile, "script", "", "Move script to play (default: built-in demonstration game)")

	// Run control
	fs.BoolVar(&opts.stopOnError, "stop-on-error", false, "Stop at the first rejected move")
	fs.IntVar(&opts.workers, "workers", 1, "Number of scripts played in parallel")

	// Output
	fs.StringVar(&opts.output, "output", "", "Report format: text, json")
	fs.BoolVar(&opts.showBoard, "board", true, "Render the final board")
	fs.BoolVar(&opts.notation, "notation", false, "Write the scripts in move notation instead of playing them")

	// Logging
	fs.StringVar(&opts.logLevel, "loglevel", "", "Log level: debug, info, warn, error, none")
	fs.StringVar(&opts.logFormat, "logformat", "", "Log encoding: console, json")

	// Help
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	fs.BoolVar(&opts.help, "h", false, "Show help")

	return fs
}

// applyFlags overrides configuration values with the flags that were set
// explicitly, so file and environment settings survive flag defaults.
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	b := config.From(cfg)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "script":
			b.WithScript(opts.scriptFile)
		case "stop-on-error":
			b.WithStopOnError(opts.stopOnError)
		case "output":
			b.WithOutputFormat(opts.output)
		case "board":
			b.WithShowBoard(opts.showBoard)
		case "loglevel":
			b.WithLogLevel(opts.logLevel)
		case "logformat":
			b.WithLogFormat(opts.logFormat)
		}
	})
}
