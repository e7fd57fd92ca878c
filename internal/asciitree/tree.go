// Package asciitree renders a dependency graph as an indented textual tree
// rooted at a chosen package.
//
// Both renderers share one visited set across the whole render, not one per
// branch. A package reached a second time is printed with a cycle marker
// and never expanded again, which guarantees termination on any finite
// graph, cyclic or not. The flip side: a package reachable over two
// independent, acyclic paths is also flagged on its second occurrence. That
// marker is an approximation, not true cycle detection, and consumers rely
// on the existing output shape, so it stays.
package asciitree

import (
	"strings"

	"github.com/specialistvlad/depvis/internal/depgraph"
)

const (
	indent     = "  "
	cycleMark  = " (cycle)"
	prettyMark = "(cycle detected)"
)

// Render walks the graph pre-order from start and returns one line per
// visited package, indented two spaces per depth level. Repeats are printed
// as "NAME (cycle)" without recursing.
func Render(g *depgraph.Graph, start string) []string {
	var lines []string
	visited := make(map[string]bool)

	type frame struct {
		deps  []string
		next  int
		depth int
	}
	var stack []frame

	visit := func(name string, depth int) {
		pad := strings.Repeat(indent, depth)
		if visited[name] {
			lines = append(lines, pad+name+cycleMark)
			return
		}
		visited[name] = true
		lines = append(lines, pad+name)
		if deps := g.Deps(name); len(deps) > 0 {
			stack = append(stack, frame{deps: deps, depth: depth + 1})
		}
	}

	visit(depgraph.Canonical(start), 0)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.deps[top.next]
		top.next++
		visit(dep, top.depth)
	}
	return lines
}

// RenderPretty is the box-drawing variant: children hang off "├─"/"└─"
// connectors with "│" rails, and a repeat gets a "(cycle detected)" line of
// its own underneath. Same shared-visited-set semantics as Render.
func RenderPretty(g *depgraph.Graph, start string) []string {
	var lines []string
	visited := make(map[string]bool)

	type frame struct {
		deps   []string
		next   int
		prefix string
	}
	var stack []frame

	visit := func(name, prefix string, root, last bool) {
		rail := "│  "
		if last {
			rail = "   "
		}
		if root {
			lines = append(lines, name)
		} else {
			marker := "├─ "
			if last {
				marker = "└─ "
			}
			lines = append(lines, prefix+marker+name)
		}
		if visited[name] {
			lines = append(lines, prefix+rail+prettyMark)
			return
		}
		visited[name] = true
		if deps := g.Deps(name); len(deps) > 0 {
			stack = append(stack, frame{deps: deps, prefix: prefix + rail})
		}
	}

	visit(depgraph.Canonical(start), "", true, true)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.deps[top.next]
		prefix := top.prefix
		top.next++
		last := top.next == len(top.deps)
		visit(dep, prefix, false, last)
	}
	return lines
}
