package depgraph

import "strings"

// Graph maps each declared package to its ordered list of direct
// dependencies. Declaration order from the source text is preserved and is
// semantically relevant: it drives traversal and rendering order.
//
// A dependency that never appears as a key of its own (a "dangling" target)
// behaves as a leaf with an empty dependency list when looked up, but is not
// a declared node for operations that iterate the whole graph.
type Graph struct {
	keys []string
	adj  map[string][]string
}

// Canonical normalizes a package name the same way Parse does, so lookups by
// a differently-cased name still resolve.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Keys returns the declared package names in declaration order. The returned
// slice is a copy; callers may modify it freely.
func (g *Graph) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Deps returns the direct dependencies of the given package in declaration
// order. An undeclared package yields nil. The returned slice is a copy.
func (g *Graph) Deps(name string) []string {
	deps, ok := g.adj[Canonical(name)]
	if !ok || len(deps) == 0 {
		return nil
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// Declared reports whether the package appears as a key of the graph.
func (g *Graph) Declared(name string) bool {
	_, ok := g.adj[Canonical(name)]
	return ok
}

// Len returns the number of declared packages.
func (g *Graph) Len() int {
	return len(g.keys)
}

// Lines renders the adjacency in the same shape it was loaded from, one
// "NAME: dep1 dep2" line per declared package. Used to echo the loaded
// graph back to the user.
func (g *Graph) Lines() []string {
	lines := make([]string, 0, len(g.keys))
	for _, k := range g.keys {
		lines = append(lines, strings.TrimRight(k+": "+strings.Join(g.adj[k], " "), " "))
	}
	return lines
}

// insert records a declared package. A redeclared package keeps its original
// position in the key order, but the new dependency list replaces the old one.
func (g *Graph) insert(name string, deps []string) {
	if _, exists := g.adj[name]; !exists {
		g.keys = append(g.keys, name)
	}
	g.adj[name] = deps
}
