// Package scan lists the immediate subdirectories of a scan root.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/workspace-manager/internal/fsops"
)

// HiddenPrefix marks entries that are never turned into workspace folders.
const HiddenPrefix = "."

// Scanner lists candidate workspace folders.
type Scanner struct {
	fs fsops.FS
}

// NewScanner creates a new Scanner.
func NewScanner(fs fsops.FS) *Scanner {
	return &Scanner{fs: fs}
}

// IsHidden reports whether the final segment of path starts with HiddenPrefix.
func IsHidden(path string) bool {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return false
	}
	return strings.HasPrefix(name, HiddenPrefix)
}

// Directories returns the immediate child directories of root that are not
// hidden, as paths joined onto root, in name order. It does not recurse.
// Symlinks count as directories when their target is one.
func (s *Scanner) Directories(root string) ([]string, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if IsHidden(path) {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := s.fs.Stat(path)
			if err != nil {
				// Dangling links are not directories.
				slog.Debug("skipping unresolvable symlink", "path", path, "error", err)
				continue
			}
			isDir = info.IsDir()
		}
		if !isDir {
			continue
		}

		dirs = append(dirs, path)
	}

	slog.Debug("scanned directories", "root", root, "count", len(dirs))
	return dirs, nil
}
