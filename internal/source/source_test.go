package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/depgraph"
)

func writeRepo(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileMode(t *testing.T) {
	t.Run("colon-line text", func(t *testing.T) {
		path := writeRepo(t, "deps.txt", "A: B C\nB: C\nC:\n")

		res, err := Load(context.Background(), path, config.ModeFile, depgraph.Options{})
		require.NoError(t, err)
		require.Nil(t, res.Index)

		assert.Equal(t, []string{"A", "B", "C"}, res.Graph.Keys())
		assert.Equal(t, []string{"B", "C"}, res.Graph.Deps("A"))
	})

	t.Run("comma-separated text", func(t *testing.T) {
		path := writeRepo(t, "deps.txt", "bash: readline, ncurses\n")

		res, err := Load(context.Background(), path, config.ModeFile, depgraph.Options{CommaSeparated: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"READLINE", "NCURSES"}, res.Graph.Deps("bash"))
	})

	t.Run("missing file is a NotFoundError", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), config.ModeFile, depgraph.Options{})

		var nf *config.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("parse errors surface unchanged", func(t *testing.T) {
		path := writeRepo(t, "deps.txt", ": B\n")

		_, err := Load(context.Background(), path, config.ModeFile, depgraph.Options{})
		var perr *depgraph.ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestLoadJSONMode(t *testing.T) {
	t.Run("list, comma-string, and null values", func(t *testing.T) {
		path := writeRepo(t, "deps.json", `{"A": ["B", "C"], "B": "C, D", "C": null, "D": ""}`)

		res, err := Load(context.Background(), path, config.ModeJSON, depgraph.Options{})
		require.NoError(t, err)

		g := res.Graph
		assert.Equal(t, []string{"A", "B", "C", "D"}, g.Keys())
		assert.Equal(t, []string{"B", "C"}, g.Deps("A"))
		assert.Equal(t, []string{"C", "D"}, g.Deps("B"))
		assert.Empty(t, g.Deps("C"))
		assert.Empty(t, g.Deps("D"))
	})

	t.Run("key order is preserved", func(t *testing.T) {
		path := writeRepo(t, "deps.json", `{"Z": [], "M": [], "A": []}`)

		res, err := Load(context.Background(), path, config.ModeJSON, depgraph.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Z", "M", "A"}, res.Graph.Keys())
	})

	t.Run("non-object document is rejected", func(t *testing.T) {
		path := writeRepo(t, "deps.json", `["A", "B"]`)

		_, err := Load(context.Background(), path, config.ModeJSON, depgraph.Options{})
		assert.ErrorContains(t, err, "top-level JSON object")
	})
}

func TestLoadYAMLMode(t *testing.T) {
	t.Run("mapping with mixed values", func(t *testing.T) {
		path := writeRepo(t, "deps.yaml", "A:\n  - B\n  - C\nB: \"C, D\"\nC:\n")

		res, err := Load(context.Background(), path, config.ModeYAML, depgraph.Options{})
		require.NoError(t, err)

		g := res.Graph
		assert.Equal(t, []string{"A", "B", "C"}, g.Keys())
		assert.Equal(t, []string{"B", "C"}, g.Deps("A"))
		assert.Equal(t, []string{"C", "D"}, g.Deps("B"))
		assert.Empty(t, g.Deps("C"))
	})

	t.Run("key order is preserved", func(t *testing.T) {
		path := writeRepo(t, "deps.yaml", "Z: []\nM: []\nA: []\n")

		res, err := Load(context.Background(), path, config.ModeYAML, depgraph.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Z", "M", "A"}, res.Graph.Keys())
	})

	t.Run("non-mapping document is rejected", func(t *testing.T) {
		path := writeRepo(t, "deps.yaml", "- A\n- B\n")

		_, err := Load(context.Background(), path, config.ModeYAML, depgraph.Options{})
		assert.ErrorContains(t, err, "top-level YAML mapping")
	})
}

func TestResolveMode(t *testing.T) {
	assert.Equal(t, config.ModeJSON, ResolveMode("deps.json", ""))
	assert.Equal(t, config.ModeJSON, ResolveMode("deps.JSON", config.ModeFile))
	assert.Equal(t, config.ModeYAML, ResolveMode("deps.yml", ""))
	assert.Equal(t, config.ModeYAML, ResolveMode("deps.yaml", ""))
	assert.Equal(t, config.ModeFile, ResolveMode("deps.txt", ""))
	assert.Equal(t, config.ModeAPKIndex, ResolveMode("https://dl-cdn.alpinelinux.org/alpine/v3.20/main/x86_64/", ""))
	assert.Equal(t, config.ModeAPKIndex, ResolveMode("whatever", config.ModeAPKIndex))
	assert.Equal(t, config.ModeYAML, ResolveMode("deps.txt", config.ModeYAML))
}
