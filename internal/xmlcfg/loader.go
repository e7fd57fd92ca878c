// Package xmlcfg provides the XML implementation of the config.Loader
// interface. The document is a flat element list:
//
//	<depvis>
//	  <package>bash</package>
//	  <repository>testrepo.txt</repository>
//	  <repo_mode>file</repo_mode>
//	  <package_version>&gt;= 5.2</package_version>
//	  <output_mode>ascii_tree</output_mode>
//	</depvis>
//
// package and repository are required; the rest default per config.Model.
package xmlcfg

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/ctxlog"
)

// document mirrors the XML layout. The root element name is not checked,
// only the child elements matter.
type document struct {
	Package        string `xml:"package"`
	Repository     string `xml:"repository"`
	RepoMode       string `xml:"repo_mode"`
	PackageVersion string `xml:"package_version"`
	OutputMode     string `xml:"output_mode"`
	Reverse        bool   `xml:"reverse"`
	CommaSeparated bool   `xml:"comma_separated"`
	OutputDir      string `xml:"output_dir"`
	DotFormat      string `xml:"dot_format"`
}

// Loader is the XML-specific config.Loader implementation.
type Loader struct{}

// NewLoader creates a new XML config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the XML config at path into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading XML run config.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &config.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML config: %w", err)
	}

	model := &config.Model{
		Package:        strings.TrimSpace(doc.Package),
		Repository:     strings.TrimSpace(doc.Repository),
		RepoMode:       strings.ToLower(strings.TrimSpace(doc.RepoMode)),
		PackageVersion: strings.TrimSpace(doc.PackageVersion),
		OutputMode:     strings.ToLower(strings.TrimSpace(doc.OutputMode)),
		Reverse:        doc.Reverse,
		CommaSeparated: doc.CommaSeparated,
		OutputDir:      strings.TrimSpace(doc.OutputDir),
		DotFormat:      strings.ToLower(strings.TrimSpace(doc.DotFormat)),
	}
	model.ApplyDefaults()

	logger.Debug("XML run config loaded.", "package", model.Package, "repo_mode", model.RepoMode)
	return model, nil
}
