package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Graph {
	t.Helper()
	g, err := Parse(text, Options{})
	require.NoError(t, err)
	return g
}

func TestReverse(t *testing.T) {
	t.Run("transposes declared edges", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB:\nC:\n")
		r := Reverse(g)

		assert.Equal(t, []string{"A", "B", "C"}, r.Keys())
		assert.Empty(t, r.Deps("A"))
		assert.Equal(t, []string{"A"}, r.Deps("B"))
		assert.Equal(t, []string{"A"}, r.Deps("C"))
	})

	t.Run("key set equals the input key set exactly", func(t *testing.T) {
		g := mustParse(t, "A: B X\nB: A\n")
		r := Reverse(g)

		assert.Equal(t, g.Keys(), r.Keys())
		assert.False(t, r.Declared("X"))
	})

	t.Run("edges to dangling targets are dropped", func(t *testing.T) {
		// B is only ever a dependency, never declared, so the A->B edge
		// has nowhere to be recorded and vanishes.
		g := mustParse(t, "A: B\n")
		r := Reverse(g)

		assert.Equal(t, []string{"A"}, r.Keys())
		assert.Empty(t, r.Deps("A"))
	})

	t.Run("input graph is not mutated", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\n")
		_ = Reverse(g)

		assert.Equal(t, []string{"B"}, g.Deps("A"))
		assert.Empty(t, g.Deps("B"))
	})

	t.Run("empty graph reverses to empty graph", func(t *testing.T) {
		r := Reverse(mustParse(t, ""))
		assert.Zero(t, r.Len())
	})
}

func TestReverseRoundTrip(t *testing.T) {
	t.Run("round trip holds when every target is declared", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB: C\nC:\n")
		rr := Reverse(Reverse(g))

		assert.Equal(t, g.Keys(), rr.Keys())
		for _, k := range g.Keys() {
			assert.ElementsMatch(t, g.Deps(k), rr.Deps(k), "deps of %s", k)
		}
	})

	t.Run("round trip loses edges to undeclared targets", func(t *testing.T) {
		g := mustParse(t, "A: B X\nB:\n")
		rr := Reverse(Reverse(g))

		assert.Equal(t, g.Keys(), rr.Keys())
		assert.Equal(t, []string{"B"}, rr.Deps("A"), "edge to undeclared X should be gone")
	})
}
