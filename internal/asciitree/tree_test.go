package asciitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/depvis/internal/depgraph"
)

func mustParse(t *testing.T, text string) *depgraph.Graph {
	t.Helper()
	g, err := depgraph.Parse(text, depgraph.Options{})
	require.NoError(t, err)
	return g
}

func TestRender(t *testing.T) {
	t.Run("indented pre-order with repeat marker", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB: C\nC:\n")
		assert.Equal(t, []string{
			"A",
			"  B",
			"    C",
			"  C (cycle)",
		}, Render(g, "A"))
	})

	t.Run("start is canonicalized", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\n")
		assert.Equal(t, []string{"A", "  B"}, Render(g, "a"))
	})

	t.Run("genuine cycle terminates with marker", func(t *testing.T) {
		g := mustParse(t, "A: B\nB: A\n")
		assert.Equal(t, []string{
			"A",
			"  B",
			"    A (cycle)",
		}, Render(g, "A"))
	})

	t.Run("shared acyclic dependency is still flagged", func(t *testing.T) {
		// The visited set is global to the render, so the second path to D
		// gets the marker even though no cycle exists. Known approximation.
		g := mustParse(t, "A: B C\nB: D\nC: D\nD:\n")
		assert.Equal(t, []string{
			"A",
			"  B",
			"    D",
			"  C",
			"    D (cycle)",
		}, Render(g, "A"))
	})

	t.Run("at most one marker line per repeated node occurrence", func(t *testing.T) {
		g := mustParse(t, "A: B B B\nB:\n")
		assert.Equal(t, []string{
			"A",
			"  B",
			"  B (cycle)",
			"  B (cycle)",
		}, Render(g, "A"))
	})

	t.Run("undeclared start renders a single line", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\n")
		assert.Equal(t, []string{"Z"}, Render(g, "Z"))
	})

	t.Run("dangling dependency renders as leaf", func(t *testing.T) {
		g := mustParse(t, "A: X\n")
		assert.Equal(t, []string{"A", "  X"}, Render(g, "A"))
	})
}

func TestRenderPretty(t *testing.T) {
	t.Run("box-drawing connectors", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB: D\nC:\nD:\n")
		assert.Equal(t, []string{
			"A",
			"   ├─ B",
			"   │  └─ D",
			"   └─ C",
		}, RenderPretty(g, "A"))
	})

	t.Run("repeat gets its own marker line", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB: C\nC:\n")
		assert.Equal(t, []string{
			"A",
			"   ├─ B",
			"   │  └─ C",
			"   └─ C",
			"      (cycle detected)",
		}, RenderPretty(g, "A"))
	})

	t.Run("cycle terminates", func(t *testing.T) {
		g := mustParse(t, "A: B\nB: A\n")
		assert.Equal(t, []string{
			"A",
			"   └─ B",
			"      └─ A",
			"         (cycle detected)",
		}, RenderPretty(g, "A"))
	})
}
