package depgraph

import (
	"fmt"
	"strings"
)

// Options controls how Parse tokenizes dependency lists.
type Options struct {
	// CommaSeparated splits dependency tokens on commas instead of
	// whitespace. Some repository files use "name: a, b, c" notation.
	CommaSeparated bool
}

// ParseError reports a malformed adjacency line: a line that contains a
// colon but no package name before it. Loading aborts on the first one
// rather than skipping the bad line.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: empty package name before ':' in %q", e.Line, e.Text)
}

// Parse builds a Graph from line-oriented adjacency text.
//
// Each line is either ignored (blank, leading '#', or no colon at all) or of
// the form "NAME: dep1 dep2 ...". Every left-hand NAME becomes a declared
// key, even with an empty dependency list. Names are canonicalized to
// uppercase at parse time.
func Parse(text string, opts Options) (*Graph, error) {
	g := &Graph{adj: make(map[string][]string)}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		name := Canonical(line[:idx])
		if name == "" {
			return nil, &ParseError{Line: i + 1, Text: line}
		}
		g.insert(name, splitDeps(line[idx+1:], opts))
	}

	return g, nil
}

func splitDeps(rest string, opts Options) []string {
	var tokens []string
	if opts.CommaSeparated {
		tokens = strings.Split(rest, ",")
	} else {
		tokens = strings.Fields(rest)
	}

	var deps []string
	for _, tok := range tokens {
		if d := Canonical(tok); d != "" {
			deps = append(deps, d)
		}
	}
	return deps
}
