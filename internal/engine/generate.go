package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/danieljhkim/workspace-manager/internal/workspace"
)

// Generate scans, merges and writes the workspace file described by req.
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	base, err := canonicalize(req.CWD, req.CWD)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current directory: %w", err)
	}

	name, err := opts.WorkspaceName(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fileName := workspace.FileName(name)
	filePath := filepath.Join(base, fileName)

	scanRoot, err := canonicalize(opts.ScanPath, base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan path: %w", err)
	}
	info, err := e.fs.Stat(scanRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrScanRootNotDir, scanRoot)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirs, err := e.scanner.Directories(scanRoot)
	if err != nil {
		return nil, err
	}

	folders, err := workspace.BuildFolders(dirs, base, scanRoot, name, !opts.ExcludeCurrent)
	if err != nil {
		return nil, err
	}

	merger := workspace.NewMerger(e.fs)
	merger.Strict = opts.Strict
	doc, prev, err := merger.Merge(filePath, workspace.MergeInput{
		Folders:    folders,
		Task:       workspace.NewUpdateTask(req.Executable, opts.TaskOptions()),
		UpdateTask: opts.UpdateTask,
	})
	if err != nil {
		return nil, err
	}

	data, err := workspace.Encode(doc)
	if err != nil {
		return nil, err
	}

	origin := prev.Origin
	changed := origin == workspace.OriginFresh ||
		e.hasher.HashBytes(prev.Data) != e.hasher.HashBytes(data)

	result := &GenerateResult{
		WorkspaceName: name,
		FileName:      fileName,
		FilePath:      filePath,
		ScanRoot:      scanRoot,
		Document:      doc,
		Data:          data,
		Origin:        origin,
		Changed:       changed,
	}

	if req.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.fs.AtomicWrite(filePath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	result.Written = true

	slog.Debug("wrote workspace file",
		"file", filePath,
		"folders", len(doc.Folders),
		"origin", origin.String(),
		"changed", changed)

	return result, nil
}
