package engine

import (
	"fmt"
	"path/filepath"
)

// canonicalize resolves path against cwd, cleans it and follows symlinks
// so that relative-path arithmetic between two canonical paths is exact.
func canonicalize(path, cwd string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	resolved, err := filepath.EvalSymlinks(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}
