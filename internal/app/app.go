// Package app wires the analyzer together: it resolves the effective run
// settings from config file and flags, loads the dependency graph, runs the
// requested analyses, and reports and persists the results.
package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/depvis/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for one analysis run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	loader config.Loader
}

// NewApp constructs the application with its own isolated logger. The
// loader is the format-specific run-config loader matching cfg.ConfigPath;
// it is nil when the run is driven by flags alone.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW),
		cfg:    cfg,
		loader: loader,
	}
}
