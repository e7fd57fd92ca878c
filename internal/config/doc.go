// Package config defines the format-agnostic run configuration model for
// the analyzer, along with the Loader interface implemented by the
// format-specific packages (xmlcfg, hclcfg). The model describes one
// analysis run: which package to start from, where the dependency data
// lives, and how results are rendered.
package config
