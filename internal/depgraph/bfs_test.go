package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBFSOrder(t *testing.T) {
	t.Run("visits each reachable node once, start first", func(t *testing.T) {
		g := mustParse(t, "A: B C\nB: C\nC:\n")
		assert.Equal(t, []string{"A", "B", "C"}, BFSOrder(g, "A"))
	})

	t.Run("start is canonicalized", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\n")
		assert.Equal(t, []string{"A", "B"}, BFSOrder(g, "a"))
	})

	t.Run("cyclic graph terminates", func(t *testing.T) {
		g := mustParse(t, "A: B\nB: A\n")
		assert.Equal(t, []string{"A", "B"}, BFSOrder(g, "A"))
	})

	t.Run("dangling dependency is visited as an implicit leaf", func(t *testing.T) {
		g := mustParse(t, "A: B\n")
		assert.Equal(t, []string{"A", "B"}, BFSOrder(g, "A"))
	})

	t.Run("undeclared start yields a single element", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\n")
		assert.Equal(t, []string{"Z"}, BFSOrder(g, "Z"))
	})

	t.Run("order follows declaration order and FIFO discipline", func(t *testing.T) {
		g := mustParse(t, "A: C B\nB: D\nC: E\nD:\nE:\n")
		assert.Equal(t, []string{"A", "C", "B", "E", "D"}, BFSOrder(g, "A"))
	})

	t.Run("unreachable declared nodes are excluded", func(t *testing.T) {
		g := mustParse(t, "A: B\nB:\nZ: A\n")
		assert.Equal(t, []string{"A", "B"}, BFSOrder(g, "A"))
	})
}
