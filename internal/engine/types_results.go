package engine

import "github.com/danieljhkim/workspace-manager/internal/workspace"

// GenerateResult represents the outcome of a generate run.
type GenerateResult struct {
	// WorkspaceName is the resolved workspace name
	WorkspaceName string

	// FileName is the workspace file name, without directory
	FileName string

	// FilePath is the absolute path of the workspace file
	FilePath string

	// ScanRoot is the canonical directory that was scanned
	ScanRoot string

	// Document is the merged document
	Document *workspace.Document

	// Data is the serialized document
	Data []byte

	// Origin tells whether a previous file was loaded, missing or discarded
	Origin workspace.Origin

	// Changed reports whether Data differs from the previous file content
	Changed bool

	// Written reports whether the file was written (false on dry runs)
	Written bool
}
