// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/depvis/internal/app"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help),
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("depvis", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
depvis - package dependency graph analyzer.

Usage:
  depvis [options]

A run is driven either by a config file (-config, XML or HCL) or directly
by -graph and -start. Flags override config file settings.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an XML or HCL run config file (or a directory holding one).")
	cFlag := flagSet.String("c", "", "Path to the run config (shorthand).")
	graphFlag := flagSet.String("graph", "", "Path to the dependency graph file.")
	gFlag := flagSet.String("g", "", "Path to the dependency graph file (shorthand).")
	startFlag := flagSet.String("start", "", "Start package, or a comma-separated list for a batch run.")
	sFlag := flagSet.String("s", "", "Start package (shorthand).")
	modeFlag := flagSet.String("mode", "", "Repository mode: file, json, yaml, or apkindex. Default is inferred.")
	reverseFlag := flagSet.Bool("reverse", false, "Analyze reverse ('depended-by') dependencies.")
	asciiFlag := flagSet.Bool("ascii", false, "Render the dependency tree as an indented ASCII tree.")
	prettyFlag := flagSet.Bool("pretty", false, "Render the dependency tree with box-drawing connectors.")
	dotFlag := flagSet.Bool("dot", false, "Export the edge list as a DOT file.")
	dotFormatFlag := flagSet.String("dot-format", "", "Also render the DOT export via graphviz, e.g. png or svg.")
	outFlag := flagSet.String("out", "", "Directory for persisted result files. Default is the current directory.")
	commaFlag := flagSet.Bool("comma", false, "Dependency tokens in the graph file are comma-separated.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	configPath := firstNonEmpty(*configFlag, *cFlag)
	graphPath := firstNonEmpty(*graphFlag, *gFlag)
	start := firstNonEmpty(*startFlag, *sFlag)

	if configPath == "" && graphPath == "" {
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
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:     configPath,
		GraphPath:      graphPath,
		RepoMode:       strings.ToLower(*modeFlag),
		Starts:         splitStarts(start),
		Reverse:        *reverseFlag,
		ASCIITree:      *asciiFlag,
		PrettyTree:     *prettyFlag,
		DotExport:      *dotFlag,
		DotFormat:      strings.ToLower(*dotFormatFlag),
		OutputDir:      *outFlag,
		CommaSeparated: *commaFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitStarts(start string) []string {
	var out []string
	for _, s := range strings.Split(start, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
