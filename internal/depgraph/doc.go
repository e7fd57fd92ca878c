// Package depgraph is the analysis core of the application. It builds an
// immutable dependency graph from adjacency text and provides the graph
// algorithms: breadth-first ordering, cycle detection, and reversal into
// the "depended-by" view.
//
// A Graph is constructed once per run and never mutated afterwards, so a
// single instance is safe to share across concurrent analyses.
package depgraph
