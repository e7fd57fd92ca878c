package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/depvis/internal/asciitree"
	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/ctxlog"
	"github.com/specialistvlad/depvis/internal/depgraph"
	"github.com/specialistvlad/depvis/internal/dot"
	"github.com/specialistvlad/depvis/internal/gitstore"
	"github.com/specialistvlad/depvis/internal/source"
)

// batchLimit bounds how many start packages are analyzed at once in batch
// mode. The graph itself is immutable and shared without locking.
const batchLimit = 4

// analysis holds everything produced for one start package. Results are
// collected first and printed afterwards so batch output stays in a
// deterministic order.
type analysis struct {
	start    string
	order    []string
	tree     []string
	saveMsgs []string
}

// Run executes one full analysis: load, optional reversal, cycle check,
// traversals, rendering, persistence, and diagram export.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.")

	model, starts, err := a.resolveModel(ctx)
	if err != nil {
		return err
	}

	res, err := source.Load(ctx, model.Repository, model.RepoMode,
		depgraph.Options{CommaSeparated: model.CommaSeparated})
	if err != nil {
		return err
	}
	graph := res.Graph
	a.logger.Debug("Dependency graph constructed.", "declared_packages", graph.Len())

	rep := newReport(a.outW)
	rep.graphEcho(graph)
	if res.Index != nil {
		a.reportIndex(rep, model, res)
	}

	work := graph
	if model.Reverse {
		work = depgraph.Reverse(graph)
	}
	rep.direction(model.Reverse)

	if depgraph.HasCycle(work) {
		rep.cycleFound()
	} else {
		rep.cycleAbsent()
	}

	store := gitstore.New(model.OutputDir)
	stamp := gitstore.Timestamp(time.Now())

	results := make([]*analysis, len(starts))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(batchLimit)
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			r, err := a.analyze(egCtx, work, model, store, stamp, start)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		rep.analysis(r, model.OutputMode)
	}

	if model.OutputMode == config.OutputDot || model.DotFormat != "" {
		if err := a.exportDiagram(ctx, graph, model, rep); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run finished.")
	return nil
}

// analyze runs the traversal (and tree render, when requested) for a single
// start package and persists the results. Safe to call concurrently: it
// only reads the shared graph.
func (a *App) analyze(ctx context.Context, g *depgraph.Graph, model *config.Model, store *gitstore.Store, stamp, start string) (*analysis, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Analyzing start package.", "start", start)

	r := &analysis{start: start, order: depgraph.BFSOrder(g, start)}

	direction := "forward"
	if model.Reverse {
		direction = "reverse"
	}
	content := fmt.Sprintf("Dependency order for %s (%s):\n%s\n", start, direction, joinArrows(r.order))
	msg, err := store.Save(ctx, fmt.Sprintf("deps_%s_%s.txt", start, stamp),
		fmt.Sprintf("Add dependency order for %s at %s", start, stamp), []byte(content))
	if err != nil {
		return nil, err
	}
	r.saveMsgs = append(r.saveMsgs, msg)

	switch model.OutputMode {
	case config.OutputASCIITree:
		r.tree = asciitree.Render(g, start)
	case config.OutputPrettyTree:
		r.tree = asciitree.RenderPretty(g, start)
	default:
		return r, nil
	}

	msg, err = store.Save(ctx, fmt.Sprintf("dependency_tree_%s_%s.txt", start, stamp),
		fmt.Sprintf("Add dependency tree for %s at %s", start, stamp),
		[]byte(strings.Join(r.tree, "\n")+"\n"))
	if err != nil {
		return nil, err
	}
	r.saveMsgs = append(r.saveMsgs, msg)
	return r, nil
}

// exportDiagram writes the DOT edge list and, when a format is configured,
// hands it to the external renderer. The exporter reads the loaded graph
// directly; the reverse flag swaps edge direction on export.
func (a *App) exportDiagram(ctx context.Context, g *depgraph.Graph, model *config.Model, rep *report) error {
	edges := dot.Edges(g, model.Reverse)
	body := dot.Marshal("dependency_graph", edges)

	path := filepath.Join(model.OutputDir, "dependency_graph.dot")
	if err := os.MkdirAll(model.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write edge list: %w", err)
	}
	rep.dotExported(path, len(edges))

	if model.DotFormat == "" {
		return nil
	}
	artifact, err := dot.Render(ctx, path, model.DotFormat)
	if err != nil {
		return err
	}
	rep.dotRendered(artifact)
	return nil
}

func joinArrows(order []string) string {
	return strings.Join(order, " → ")
}

// reportIndex surfaces what the remote index knows about the configured
// package, including the optional version-constraint check.
func (a *App) reportIndex(rep *report, model *config.Model, res *source.Result) {
	pkg, ok := res.Index.Package(strings.ToLower(model.Package))
	if !ok {
		rep.warnf("Package %s not found in the remote index; it will be shown as a leaf.", model.Package)
		return
	}
	rep.indexPackage(pkg.Name, pkg.Version, len(pkg.Depends))

	if model.PackageVersion == "" {
		return
	}
	ok, err := pkg.SatisfiesConstraint(model.PackageVersion)
	switch {
	case err != nil:
		rep.warnf("Version check skipped: %v", err)
	case ok:
		rep.okf("Version %s satisfies constraint %q.", pkg.Version, model.PackageVersion)
	default:
		rep.warnf("Version %s does not satisfy constraint %q.", pkg.Version, model.PackageVersion)
	}
}
