package depgraph

// Reverse derives the transposed "depended-by" graph. The result holds
// exactly one key per declared key of the input, in the same order, and the
// input graph is never mutated.
//
// Edges pointing at dangling targets are silently dropped: there is no
// declared entry to reverse them into. As a consequence
// Reverse(Reverse(g)) only reproduces g when every dependency target is
// itself declared. This matches the long-standing observable behavior of the
// tool and is deliberately left as is; see the round-trip tests.
func Reverse(g *Graph) *Graph {
	out := &Graph{
		keys: g.Keys(),
		adj:  make(map[string][]string, len(g.keys)),
	}
	for _, k := range out.keys {
		out.adj[k] = nil
	}

	for _, n := range g.keys {
		for _, d := range g.adj[n] {
			if _, declared := out.adj[d]; declared {
				out.adj[d] = append(out.adj[d], n)
			}
		}
	}
	return out
}
