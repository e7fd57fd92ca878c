// Package hclcfg provides the HCL implementation of the config.Loader
// interface, the native configuration dialect of the tool:
//
//	depvis {
//	  package    = "bash"
//	  repository = "${env.HOME}/deps.txt"
//	  reverse    = true
//	}
//
// Attribute expressions are evaluated with an `env` object exposing the
// process environment.
package hclcfg

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/depvis/internal/config"
	"github.com/specialistvlad/depvis/internal/ctxlog"
	"github.com/specialistvlad/depvis/internal/schema"
)

// Loader is the HCL-specific config.Loader implementation.
type Loader struct{}

// NewLoader creates a new HCL config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and decodes the HCL config at path into the agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL run config.", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &config.NotFoundError{Path: path}
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var doc schema.File
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if doc.Depvis == nil {
		return nil, fmt.Errorf("%s: missing required 'depvis' block", path)
	}

	d := doc.Depvis
	model := &config.Model{
		Package:        strings.TrimSpace(d.Package),
		Repository:     strings.TrimSpace(d.Repository),
		RepoMode:       strings.ToLower(strings.TrimSpace(d.RepoMode)),
		PackageVersion: strings.TrimSpace(d.PackageVersion),
		OutputMode:     strings.ToLower(strings.TrimSpace(d.OutputMode)),
		Reverse:        d.Reverse,
		CommaSeparated: d.CommaSeparated,
		OutputDir:      strings.TrimSpace(d.OutputDir),
		DotFormat:      strings.ToLower(strings.TrimSpace(d.DotFormat)),
	}
	model.ApplyDefaults()

	logger.Debug("HCL run config loaded.", "package", model.Package, "repo_mode", model.RepoMode)
	return model, nil
}

// evalContext builds the expression scope available to config attributes.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
