package depgraph

// BFSOrder computes the breadth-first visitation order from the given start
// package. The start is canonicalized first and is always the first element
// of the result. Dependencies are enqueued in declaration order, so the
// output is fully deterministic.
//
// A start (or dependency) that is not declared in the graph is not an
// error; it traverses as a leaf with no dependencies.
func BFSOrder(g *Graph, start string) []string {
	var order []string
	visited := make(map[string]bool)
	queue := []string{Canonical(start)}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)
		queue = append(queue, g.adj[node]...)
	}
	return order
}
