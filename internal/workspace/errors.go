package workspace

import "errors"

var (
	// ErrNoFolderName indicates a path has no final name component.
	ErrNoFolderName = errors.New("invalid folder name")

	// ErrRelativePath indicates a folder path cannot be expressed relative
	// to the workspace root.
	ErrRelativePath = errors.New("failed to calculate relative path")

	// ErrMalformedDocument indicates an existing workspace file could not be parsed.
	ErrMalformedDocument = errors.New("malformed workspace document")
)
