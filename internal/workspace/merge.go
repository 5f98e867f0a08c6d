package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/danieljhkim/workspace-manager/internal/fsops"
)

// Origin records where the merged document's preserved content came from.
type Origin int

const (
	// OriginFresh means no workspace file existed.
	OriginFresh Origin = iota

	// OriginLoaded means an existing file was parsed and its content kept.
	OriginLoaded

	// OriginRecovered means an existing file could not be parsed and was
	// replaced by a fresh document.
	OriginRecovered
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginFresh:
		return "fresh"
	case OriginLoaded:
		return "loaded"
	case OriginRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// MergeInput is everything a merge needs besides the previous document.
type MergeInput struct {
	// Folders replaces the folder list unconditionally.
	Folders []Folder

	// Task is the maintenance task to install when tasks are (re)created.
	Task Task

	// UpdateTask replaces the maintenance task even if a task set exists.
	UpdateTask bool
}

// Merge combines a previous document (nil when there is none) with fresh
// scan results. Extraneous keys of prev are carried over as-is. The task set
// is kept unless UpdateTask is set or prev has none, in which case the
// maintenance task replaces any task with the reserved label. prev is not
// modified.
func Merge(prev *Document, in MergeInput) *Document {
	doc := NewDocument()
	doc.Folders = append(doc.Folders, in.Folders...)

	if prev == nil {
		doc.Tasks = NewTaskSet(in.Task)
		return doc
	}

	for k, v := range prev.Extra {
		doc.Extra[k] = v
	}

	if prev.Tasks == nil || in.UpdateTask {
		doc.Tasks = MergeTasks(prev.Tasks, in.Task)
	} else {
		doc.Tasks = prev.Tasks
	}
	return doc
}

// Snapshot is the workspace file as it was before a run.
type Snapshot struct {
	// Document is the parsed file, nil unless Origin is OriginLoaded.
	Document *Document

	// Data holds the raw bytes read, nil when the file did not exist.
	Data []byte

	Origin Origin
}

// Merger loads the previous workspace file and merges new content into it.
type Merger struct {
	fs fsops.FS

	// Strict turns an unparsable existing file into an error instead of
	// silently starting over.
	Strict bool
}

// NewMerger creates a new Merger.
func NewMerger(fs fsops.FS) *Merger {
	return &Merger{fs: fs}
}

// Load reads the workspace file at path. The snapshot has OriginFresh when
// the file does not exist, and OriginRecovered when it exists but cannot be
// parsed (unless Strict is set).
func (m *Merger) Load(path string) (*Snapshot, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Snapshot{Origin: OriginFresh}, nil
		}
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		if m.Strict {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slog.Warn("existing workspace file is not valid, starting over", "file", path, "error", err)
		return &Snapshot{Data: data, Origin: OriginRecovered}, nil
	}
	return &Snapshot{Document: doc, Data: data, Origin: OriginLoaded}, nil
}

// Merge loads the workspace file at path and merges in. The file is not
// written. The returned snapshot describes the file as loaded.
func (m *Merger) Merge(path string, in MergeInput) (*Document, *Snapshot, error) {
	prev, err := m.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return Merge(prev.Document, in), prev, nil
}
