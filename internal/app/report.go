package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/depgraph"
)

// report is the human-facing half of the output: the loaded graph, the
// traversal results, and where everything was saved. Log output goes
// through slog; this is what the user actually asked for.
type report struct {
	w       io.Writer
	heading *color.Color
	warn    *color.Color
	good    *color.Color
}

func newReport(w io.Writer) *report {
	return &report{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow),
		good:    color.New(color.FgGreen),
	}
}

func (r *report) graphEcho(g *depgraph.Graph) {
	r.heading.Fprintln(r.w, "Loaded dependency graph:")
	for _, line := range g.Lines() {
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}

func (r *report) direction(reverse bool) {
	if reverse {
		fmt.Fprintln(r.w, "Mode: reverse dependencies (depended-by)")
	} else {
		fmt.Fprintln(r.w, "Mode: forward dependencies (depends-on)")
	}
}

func (r *report) cycleFound() {
	r.warn.Fprintln(r.w, "Cyclic dependencies detected!")
}

func (r *report) cycleAbsent() {
	r.good.Fprintln(r.w, "No cyclic dependencies found.")
}

func (r *report) analysis(a *analysis, outputMode string) {
	fmt.Fprintln(r.w)
	r.heading.Fprintf(r.w, "Traversal order for %s:\n", a.start)
	fmt.Fprintln(r.w, joinArrows(a.order))

	if len(a.tree) > 0 {
		title := "Dependency tree:"
		if outputMode == config.OutputPrettyTree {
			title = "Dependency tree (pretty):"
		}
		r.heading.Fprintln(r.w, title)
		for _, line := range a.tree {
			fmt.Fprintln(r.w, line)
		}
	}

	for _, msg := range a.saveMsgs {
		fmt.Fprintln(r.w, msg)
	}
}

func (r *report) indexPackage(name, version string, directDeps int) {
	fmt.Fprintf(r.w, "Index package %s, version %s, %d direct dependencies.\n", name, version, directDeps)
}

func (r *report) dotExported(path string, edges int) {
	fmt.Fprintf(r.w, "Edge list with %d edges exported to %s\n", edges, path)
}

func (r *report) dotRendered(path string) {
	r.good.Fprintf(r.w, "Diagram rendered as %s\n", path)
}

func (r *report) warnf(format string, args ...any) {
	r.warn.Fprintf(r.w, format+"\n", args...)
}

func (r *report) okf(format string, args ...any) {
	r.good.Fprintf(r.w, format+"\n", args...)
}
