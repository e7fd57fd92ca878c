// Package schema holds the gohcl struct definitions for the HCL flavor of
// the run configuration. Translation into the agnostic config model lives
// in the hclcfg package.
package schema

import "github.com/hashicorp/hcl/v2"

// Depvis represents a `depvis` block from a run config file.
type Depvis struct {
	Package        string `hcl:"package"`
	Repository     string `hcl:"repository"`
	RepoMode       string `hcl:"repo_mode,optional"`
	PackageVersion string `hcl:"package_version,optional"`
	OutputMode     string `hcl:"output_mode,optional"`
	Reverse        bool   `hcl:"reverse,optional"`
	CommaSeparated bool   `hcl:"comma_separated,optional"`
	OutputDir      string `hcl:"output_dir,optional"`
	DotFormat      string `hcl:"dot_format,optional"`
}

// File represents the top-level structure of a run config file.
type File struct {
	Depvis *Depvis  `hcl:"depvis,block"`
	Body   hcl.Body `hcl:",remain"`
}
