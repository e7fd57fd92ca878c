package depgraph

// HasCycle reports whether the subgraph induced by the declared keys
// contains a directed cycle. Dangling targets are dead ends and can never
// be part of one.
//
// The walk is a depth-first search with two classification sets: nodes on
// the active path ("visiting") and fully processed nodes ("visited"). It is
// iterative, holding (node, next-dependency-index) frames on an explicit
// stack, so arbitrarily deep graphs cannot exhaust the call stack. The
// search stops at the first back edge; it does not identify the cycle's
// members. Cost is O(V+E) over declared nodes.
func HasCycle(g *Graph) bool {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	type frame struct {
		node string
		next int
	}

	for _, root := range g.keys {
		if visited[root] {
			continue
		}

		stack := []frame{{node: root}}
		visiting[root] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.adj[top.node]

			advanced := false
			for top.next < len(deps) {
				d := deps[top.next]
				top.next++
				if visiting[d] {
					return true
				}
				if visited[d] || !g.Declared(d) {
					continue
				}
				visiting[d] = true
				stack = append(stack, frame{node: d})
				advanced = true
				break
			}
			if advanced {
				continue
			}

			delete(visiting, top.node)
			visited[top.node] = true
			stack = stack[:len(stack)-1]
		}
	}
	return false
}
