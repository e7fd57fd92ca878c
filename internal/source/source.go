// Package source resolves the configured repository into a dependency
// graph. Local repositories come in three shapes — the colon-line text
// grammar, a JSON object, or a YAML mapping — and a remote repository is an
// Alpine-style package index. Every shape is flattened into the same
// adjacency text and fed through depgraph.Parse, so the graph is always
// constructed from a single text source.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/depvis/internal/apkindex"
	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/ctxlog"
	"github.com/specialistvlad/depvis/internal/depgraph"
)

// Result is a loaded repository: the graph, plus the raw index when the
// repository was remote (for version reporting).
type Result struct {
	Graph *depgraph.Graph
	Index *apkindex.Index
}

// Load reads the repository at path according to mode (a config.Mode*
// constant; empty means ResolveMode decides) and builds the graph.
func Load(ctx context.Context, path, mode string, opts depgraph.Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	mode = ResolveMode(path, mode)
	logger.Debug("Loading repository.", "path", path, "mode", mode)

	if mode == config.ModeAPKIndex {
		return loadRemote(ctx, path, opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &config.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read repository: %w", err)
	}

	// JSON and YAML flatten into whitespace-separated adjacency text, so
	// the comma-separator option only ever applies to plain text files.
	var text string
	switch mode {
	case config.ModeJSON:
		text, err = adjacencyFromJSON(data)
		opts = depgraph.Options{}
	case config.ModeYAML:
		text, err = adjacencyFromYAML(data)
		opts = depgraph.Options{}
	default:
		text = string(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repository %s: %w", path, err)
	}

	g, err := depgraph.Parse(text, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Repository loaded.", "declared_packages", g.Len())
	return &Result{Graph: g}, nil
}

// ResolveMode picks the effective repository mode: an explicit mode wins,
// then URL-looking paths go remote, then the file extension decides, and
// plain text is the final fallback.
func ResolveMode(path, mode string) string {
	if mode != "" && mode != config.ModeFile {
		return mode
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return config.ModeAPKIndex
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return config.ModeJSON
	case ".yaml", ".yml":
		return config.ModeYAML
	}
	return config.ModeFile
}

func loadRemote(ctx context.Context, url string, opts depgraph.Options) (*Result, error) {
	data, err := apkindex.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	ix, err := apkindex.Parse(data)
	if err != nil {
		return nil, err
	}

	// Index dependency tokens are whitespace-separated regardless of how
	// local files are configured.
	g, err := depgraph.Parse(ix.AdjacencyText(), depgraph.Options{})
	if err != nil {
		return nil, err
	}
	return &Result{Graph: g, Index: ix}, nil
}
