package config

import (
	"context"
	"errors"
	"fmt"
)

// Repository source modes understood by the source package.
const (
	ModeFile     = "file"
	ModeJSON     = "json"
	ModeYAML     = "yaml"
	ModeAPKIndex = "apkindex"
)

// Output modes for the rendered analysis.
const (
	OutputASCIITree  = "ascii_tree"
	OutputPrettyTree = "pretty_tree"
	OutputBFS        = "bfs"
	OutputDot        = "dot"
)

// Model is the unified representation of one analysis run, independent of
// whether it was loaded from XML, HCL, or synthesized from CLI flags.
type Model struct {
	// Package is the start node for traversal and rendering.
	Package string
	// Repository is a local dependency file or, in apkindex mode, the
	// base URL of a remote package index.
	Repository string
	// RepoMode selects how Repository is interpreted (ModeFile et al.).
	RepoMode string
	// PackageVersion is an optional version constraint, checked against
	// the index version in apkindex mode.
	PackageVersion string
	// OutputMode selects the rendering (OutputASCIITree et al.).
	OutputMode string
	// Reverse analyzes the "depended-by" view instead of "depends-on".
	Reverse bool
	// CommaSeparated switches the adjacency grammar to comma-separated
	// dependency tokens.
	CommaSeparated bool
	// OutputDir is where result files are persisted. Empty means the
	// current directory.
	OutputDir string
	// DotFormat, when non-empty, asks the external renderer for an image
	// artifact in that format after the DOT export.
	DotFormat string
}

// Loader is the interface for a format-specific configuration loader. It
// reads the file at path and translates it into the agnostic model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// NotFoundError reports a missing or unreadable input source, raised before
// any graph is constructed.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input source not found: %s", e.Path)
}

// ApplyDefaults fills the mode fields the way the loaders' documents may
// leave them: file repositories and the plain ASCII tree.
func (m *Model) ApplyDefaults() {
	if m.RepoMode == "" {
		m.RepoMode = ModeFile
	}
	if m.OutputMode == "" {
		m.OutputMode = OutputASCIITree
	}
	if m.OutputDir == "" {
		m.OutputDir = "."
	}
}

// Validate checks the fields no run can do without.
func (m *Model) Validate() error {
	if m.Package == "" {
		return errors.New("package name is empty")
	}
	if m.Repository == "" {
		return errors.New("repository path/url is empty")
	}
	switch m.RepoMode {
	case ModeFile, ModeJSON, ModeYAML, ModeAPKIndex:
	default:
		return fmt.Errorf("unknown repo_mode %q", m.RepoMode)
	}
	return nil
}

// KnownOutputMode reports whether the configured output mode is one the
// renderer understands. Unknown modes are not fatal; the caller warns and
// falls back to the ASCII tree, matching the tool's historical behavior.
func (m *Model) KnownOutputMode() bool {
	switch m.OutputMode {
	case OutputASCIITree, OutputPrettyTree, OutputBFS, OutputDot:
		return true
	}
	return false
}
