package app

import "errors"

// Config holds everything the CLI layer hands to an App instance. Fields
// mirror the flags; when a run config file is used, the non-empty fields
// here override what the file says.
type Config struct {
	// ConfigPath points at an XML or HCL run config file (or a directory
	// holding one). Optional when GraphPath and Starts are given directly.
	ConfigPath string
	// GraphPath points at the local dependency file.
	GraphPath string
	// RepoMode overrides how the repository is interpreted.
	RepoMode string
	// Starts are the traversal start packages. More than one runs a batch.
	Starts []string

	Reverse        bool
	ASCIITree      bool
	PrettyTree     bool
	DotExport      bool
	DotFormat      string
	OutputDir      string
	CommaSeparated bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. The input sources are the only hard
// requirement at this level; everything else has defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" && cfg.GraphPath == "" {
		return nil, errors.New("either a run config (-config) or a graph file (-graph) is required")
	}
	if cfg.ConfigPath == "" && len(cfg.Starts) == 0 {
		return nil, errors.New("a start package (-start) is required when no run config is given")
	}
	return &cfg, nil
}
