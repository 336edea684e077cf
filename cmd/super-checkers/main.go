// super-checkers plays move scripts through the super-checkers rules engine
// and prints the final board, the players' counters and the winner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/super-checkers-go/internal/config"
	"github.com/lgbarn/super-checkers-go/internal/output"
	"github.com/lgbarn/super-checkers-go/internal/script"
	"github.com/lgbarn/super-checkers-go/internal/worker"
)

const (
	programName    = "super-checkers"
	programVersion = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program behind a testable signature. It returns the
// process exit code: 0 on success, 1 when configuration or a script cannot
// be loaded or a run stops on a rejected move, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.help {
		usage(fs, stderr)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return 0
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	applyFlags(fs, &opts, cfg)
	cfg.SetOutput(stdout)
	cfg.SetLog(stderr)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck // nothing useful to do on exit

	items, err := loadScripts(cfg.Run.ScriptPath, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.notation {
		if err := writeNotation(cfg.OutputFile, items); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	writer, err := output.NewReportWriter(cfg.Output.Format, cfg.OutputFile, cfg.Output.ShowBoard)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	results := worker.RunAll(items,
		worker.PlayScript(logger, cfg.Run.StopOnError),
		cfg.Run.StopOnError,
		worker.WithWorkers(opts.workers),
	)

	return report(results, writer, cfg, stderr, logger)
}

// loadScripts gathers the configured script followed by any positional
// script files. With none given the demonstration game is played. A
// notation file holding several games contributes one item per game,
// named "path#n".
func loadScripts(configured string, extra []string) ([]worker.WorkItem, error) {
	var paths []string
	if configured != "" {
		paths = append(paths, configured)
	}
	paths = append(paths, extra...)

	if len(paths) == 0 {
		s, err := script.Default()
		if err != nil {
			return nil, err
		}
		return []worker.WorkItem{{Name: "demo", Script: s}}, nil
	}

	items := make([]worker.WorkItem, 0, len(paths))
	for _, path := range paths {
		scripts, err := script.LoadAll(path)
		if err != nil {
			return nil, err
		}
		for n, s := range scripts {
			name := path
			if len(scripts) > 1 {
				name = fmt.Sprintf("%s#%d", path, n+1)
			}
			items = append(items, worker.WorkItem{Name: name, Script: s, Index: len(items)})
		}
	}
	return items, nil
}

// writeNotation converts the loaded scripts to move notation, separating
// games with a blank line so the output reads back as one multi-game file.
func writeNotation(w io.Writer, items []worker.WorkItem) error {
	for i, item := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := script.WriteNotation(w, item.Script); err != nil {
			return err
		}
	}
	return nil
}

// report writes every game's report and lists rejected moves on stderr.
func report(results []worker.ProcessResult, writer output.ReportWriter, cfg *config.Config, stderr io.Writer, logger *zap.Logger) int {
	status := 0
	for i, r := range results {
		if len(results) > 1 && cfg.Output.Format != output.FormatJSON {
			if i > 0 {
				fmt.Fprintln(cfg.OutputFile)
			}
			fmt.Fprintf(cfg.OutputFile, "== %s ==\n", r.Name)
		}

		if r.Run != nil {
			for _, rej := range r.Run.Rejections {
				fmt.Fprintf(stderr, "%s: move %d (%s) rejected: %v\n", r.Name, rej.Index, rej.Move, rej.Err)
			}
		}
		if r.Error != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", r.Name, r.Error)
			status = 1
		}

		if err := writer.WriteGame(r.Game); err != nil {
			logger.Error("writing report", zap.String("script", r.Name), zap.Error(err))
			fmt.Fprintf(stderr, "Error writing report: %v\n", err)
			return 1
		}
	}
	return status
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] [script-files...]\n\n", programName)
	fmt.Fprintf(w, "Plays super-checkers move scripts and reports the outcome.\n")
	fmt.Fprintf(w, "Scripts are yaml, json or toml files, or %s move notation.\n\n", script.NotationExt)
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment overrides use the %s_ prefix, e.g. %s_LOG_LEVEL=debug.\n",
		config.EnvPrefix, config.EnvPrefix)
}
