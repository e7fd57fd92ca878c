// Package fsutil provides file system helpers for resolving user-supplied
// paths into concrete input files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindByExt recursively collects all files under root whose name ends with
// any of the given extensions, sorted for deterministic selection.
func FindByExt(root string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResolveConfigPath turns a config argument into a concrete file. A file
// path passes through; a directory is searched for exactly the supported
// config extensions, and the first match (sorted) wins.
func ResolveConfigPath(path string, exts ...string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}

	files, err := FindByExt(path, exts...)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no config file (%s) found under %s", strings.Join(exts, ", "), path)
	}
	return files[0], nil
}
