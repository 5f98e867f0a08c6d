package engine

import "errors"

var (
	// ErrValidation indicates the run options are invalid.
	ErrValidation = errors.New("validation failed")

	// ErrScanRootNotDir indicates the scan path is not a directory.
	ErrScanRootNotDir = errors.New("scan path is not a directory")
)
