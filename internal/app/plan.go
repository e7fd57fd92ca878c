package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/ctxlog"
	"github.com/specialistvlad/depvis/internal/depgraph"
)

// resolveModel merges the run config file (if any) with the CLI overrides
// into the effective model, and expands the start list. Flags win over the
// file; boolean flags can only switch a behavior on.
func (a *App) resolveModel(ctx context.Context) (*config.Model, []string, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{}
	if a.loader != nil {
		loaded, err := a.loader.Load(ctx, a.cfg.ConfigPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load run config: %w", err)
		}
		model = loaded
	}

	if a.cfg.GraphPath != "" {
		model.Repository = a.cfg.GraphPath
	}
	if a.cfg.RepoMode != "" {
		model.RepoMode = a.cfg.RepoMode
	}
	if a.cfg.Reverse {
		model.Reverse = true
	}
	if a.cfg.CommaSeparated {
		model.CommaSeparated = true
	}
	if a.cfg.OutputDir != "" {
		model.OutputDir = a.cfg.OutputDir
	}
	if a.cfg.DotFormat != "" {
		model.DotFormat = a.cfg.DotFormat
	}
	switch {
	case a.cfg.DotExport:
		model.OutputMode = config.OutputDot
	case a.cfg.PrettyTree:
		model.OutputMode = config.OutputPrettyTree
	case a.cfg.ASCIITree:
		model.OutputMode = config.OutputASCIITree
	}

	starts := dedupeStarts(a.cfg.Starts)
	if len(starts) == 0 && model.Package != "" {
		starts = []string{depgraph.Canonical(model.Package)}
	}
	if len(starts) > 0 {
		model.Package = starts[0]
	}

	model.ApplyDefaults()
	if !model.KnownOutputMode() {
		logger.Warn("Unrecognized output_mode, defaulting to ascii_tree.", "output_mode", model.OutputMode)
		model.OutputMode = config.OutputASCIITree
	}
	if err := model.Validate(); err != nil {
		return nil, nil, err
	}

	logger.Debug("Effective run settings resolved.",
		"package", model.Package,
		"repository", model.Repository,
		"repo_mode", model.RepoMode,
		"output_mode", model.OutputMode,
		"reverse", model.Reverse,
		"starts", len(starts),
	)
	return model, starts, nil
}

// dedupeStarts canonicalizes the start list and drops repeats so a batch
// never writes the same result file twice.
func dedupeStarts(starts []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range starts {
		c := depgraph.Canonical(s)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
