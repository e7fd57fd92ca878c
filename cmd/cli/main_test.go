package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_FlagsOnlyAnalysis(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A complete run driven by flags alone: a graph file and a start package.
	tempDir := t.TempDir()
	graphPath := filepath.Join(tempDir, "graph.txt")
	graph := "a: b c\nb: c\nc:\n"
	require.NoError(t, os.WriteFile(graphPath, []byte(graph), 0600))

	args := []string{"-g", graphPath, "-s", "a", "-out", tempDir}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "A → B → C", "Expected the traversal order in the output")
	require.Contains(t, output, "No cyclic dependencies found.")

	// The traversal order is also persisted next to the graph.
	entries, err := filepath.Glob(filepath.Join(tempDir, "deps_A_*.txt"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "Expected exactly one persisted result file")
}

func TestRun_MissingGraphFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-g", filepath.Join(t.TempDir(), "no-such-graph.txt"), "-s", "a"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when the graph file does not exist")
}

func TestRun_XMLConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An XML run config pointing at a local graph file.
	tempDir := t.TempDir()
	graphPath := filepath.Join(tempDir, "graph.txt")
	require.NoError(t, os.WriteFile(graphPath, []byte("a: b\nb:\n"), 0600))

	configXML := `<config>
  <package>a</package>
  <repository>` + graphPath + `</repository>
  <output_mode>ascii_tree</output_mode>
</config>`
	configPath := filepath.Join(tempDir, "run.xml")
	require.NoError(t, os.WriteFile(configPath, []byte(configXML), 0600))

	args := []string{"-config", configPath, "-out", tempDir}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "A → B")
	require.Contains(t, output, "Dependency tree:")
}

func TestRun_InvalidConfigExtensionFallsBackToXML(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A config directory with no recognizable config file inside.
	args := []string{"-config", t.TempDir()}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should fail when the config directory holds no config file")
}
