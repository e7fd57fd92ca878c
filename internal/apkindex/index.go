package apkindex

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"

	version "github.com/hashicorp/go-version"
)

// Package is one entry of the index.
type Package struct {
	Name    string
	Version string
	Depends []string
}

// Index is the parsed package index, preserving the order entries appeared in.
type Index struct {
	order    []string
	packages map[string]*Package
}

// Parse unpacks an APKINDEX.tar.gz payload and extracts its package entries.
func Parse(data []byte) (*Index, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("index is not gzip-compressed: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("archive contains no APKINDEX member")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read index archive: %w", err)
		}
		if hdr.Name != "APKINDEX" {
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read APKINDEX member: %w", err)
		}
		return parseEntries(string(content)), nil
	}
}

func parseEntries(content string) *Index {
	ix := &Index{packages: make(map[string]*Package)}

	for _, entry := range strings.Split(strings.TrimSpace(content), "\n\n") {
		pkg := &Package{}
		for _, line := range strings.Split(entry, "\n") {
			key, val, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			switch key {
			case "P":
				pkg.Name = strings.TrimSpace(val)
			case "V":
				pkg.Version = strings.TrimSpace(val)
			case "D":
				pkg.Depends = strings.Fields(val)
			}
		}
		if pkg.Name == "" {
			continue
		}
		if _, seen := ix.packages[pkg.Name]; !seen {
			ix.order = append(ix.order, pkg.Name)
		}
		ix.packages[pkg.Name] = pkg
	}
	return ix
}

// Package looks up an entry by name.
func (ix *Index) Package(name string) (*Package, bool) {
	p, ok := ix.packages[name]
	return p, ok
}

// Len returns the number of indexed packages.
func (ix *Index) Len() int {
	return len(ix.order)
}

// AdjacencyText flattens the index into the tool's colon-line grammar so
// the whole graph pipeline applies unchanged. Dependency tokens are
// normalized first: version constraints are trimmed, and shared-object,
// pkg-config, command, path, and anti-dependency tokens are skipped — those
// name capabilities, not packages.
func (ix *Index) AdjacencyText() string {
	var b strings.Builder
	for _, name := range ix.order {
		b.WriteString(name)
		b.WriteString(":")
		for _, dep := range ix.packages[name].Depends {
			if d, ok := normalizeDepend(dep); ok {
				b.WriteString(" ")
				b.WriteString(d)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// normalizeDepend reduces an apk depends token to a bare package name.
func normalizeDepend(tok string) (string, bool) {
	if tok == "" || strings.HasPrefix(tok, "!") || strings.HasPrefix(tok, "/") {
		return "", false
	}
	// so:, pc: and cmd: qualifiers reference capabilities rather than
	// package names.
	if strings.Contains(tok, ":") {
		return "", false
	}
	if i := strings.IndexAny(tok, "<>=~"); i >= 0 {
		tok = tok[:i]
	}
	if tok == "" {
		return "", false
	}
	return tok, true
}

// SatisfiesConstraint checks the entry's version against a constraint
// string such as ">= 5.2". A bare version is treated as an equality check.
// Alpine revision suffixes ("1.2.3-r4") that go-version cannot parse are
// reported as an error so the caller can warn instead of failing the run.
func (p *Package) SatisfiesConstraint(constraint string) (bool, error) {
	v, err := version.NewVersion(p.Version)
	if err != nil {
		return false, fmt.Errorf("index version %q is not comparable: %w", p.Version, err)
	}

	if c, err := version.NewConstraint(constraint); err == nil {
		return c.Check(v), nil
	}

	want, err := version.NewVersion(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return v.Equal(want), nil
}
