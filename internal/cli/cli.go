package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/skilltreego/internal/app"
	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/emitter"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("skilltree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SkillTree - Skill dependency graph analyzer for curriculum catalogs.

Usage:
  skilltree analyze CATALOG_PATH [options]

Arguments:
  CATALOG_PATH
    Path to a catalog file (.hcl, .yaml, .yml) or a directory of catalog files.

Options:
`)
		flagSet.PrintDefaults()
	}

	validateFlag := flagSet.Bool("validate", false, "Run structural validation instead of analytics. Exit code 1 if issues are found.")
	reportFlag := flagSet.String("report", "", "Write the full textual analytics report to this path.")
	graphFlag := flagSet.String("graph", "", "Write layout position data (JSON) to this path.")
	layoutFlag := flagSet.String("layout", "hierarchical", "Layout strategy for --graph. Options: 'hierarchical' or 'force'.")
	duplicatesFlag := flagSet.String("duplicates", "first", "Duplicate skill id policy. Options: 'first', 'last', or 'reject'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		flagSet.Usage()
		return nil, true, nil
	}
	if args[0] != "analyze" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: only 'analyze' is supported", args[0])}
	}

	// The stdlib flag package stops at the first positional argument, so
	// parse in rounds: peel off the catalog path, keep parsing the rest.
	path := ""
	rest := args[1:]
	for {
		if err := flagSet.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if flagSet.NArg() == 0 {
			break
		}
		if path != "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
		}
		path = flagSet.Arg(0)
		rest = flagSet.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.", "catalog_path", path)

	if path == "" {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	policy, err := catalog.ParseDuplicatePolicy(strings.ToLower(*duplicatesFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	layout, err := emitter.ParseLayoutMode(strings.ToLower(*layoutFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CatalogPath: path,
		Validate:    *validateFlag,
		ReportPath:  *reportFlag,
		GraphPath:   *graphFlag,
		Layout:      layout,
		Duplicates:  policy,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
