package engine

import "github.com/danieljhkim/workspace-manager/internal/config"

// GenerateRequest represents a request to (re)generate a workspace file.
type GenerateRequest struct {
	// CWD is the directory the workspace file is written to and the root
	// all folder paths are relative to.
	CWD string

	// Options is the effective configuration of the run.
	Options config.Options

	// Executable is the command the maintenance task runs. Empty falls
	// back to the bare tool name.
	Executable string

	// DryRun builds the document without writing it.
	DryRun bool
}
