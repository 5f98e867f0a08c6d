// Package engine provides the core business logic for workspace-manager.
//
// The engine package acts as the orchestration layer between the CLI and
// the lower-level packages. One Generate call performs a whole run:
//   - resolve the workspace root, scan root and workspace file
//   - scan the scan root for folders and build their entries
//   - load the previous workspace file and merge the new content into it
//   - serialize the document and replace the file atomically
//
// Every filesystem mutation happens in the final step, so a failure anywhere
// earlier leaves an existing workspace file untouched.
package engine

import (
	"os"

	"github.com/danieljhkim/workspace-manager/internal/fsops"
	"github.com/danieljhkim/workspace-manager/internal/hash"
	"github.com/danieljhkim/workspace-manager/internal/scan"
)

// Engine orchestrates workspace generation.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	scanner *scan.Scanner
	hasher  hash.Hasher
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher) *Engine {
	return &Engine{
		fs:      fs,
		scanner: scan.NewScanner(fs),
		hasher:  hasher,
	}
}

// ResolveExecutable returns the path of the running binary, or "" when it
// cannot be determined.
func ResolveExecutable() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return exe
}
