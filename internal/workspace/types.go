package workspace

import "encoding/json"

const (
	// FileExtension is appended to the workspace name to form the file name.
	FileExtension = ".code-workspace"

	// FolderEmblem prefixes the display name of every scanned folder.
	FolderEmblem = "📦 "

	// RootEmblem prefixes the display name of the current-directory entry.
	RootEmblem = "🏗️ "

	// UpdateTaskLabel is the reserved label of the maintenance task.
	UpdateTaskLabel = "Update Workspace"

	// UpdateTaskType is the task type of the maintenance task.
	UpdateTaskType = "process"

	// TaskSetVersion is the schema version written for new task sets.
	TaskSetVersion = "2.0.0"

	// FallbackCommand is used when the running executable cannot be resolved.
	FallbackCommand = "workspace-manager"
)

// FileName returns the workspace file name for a workspace name.
func FileName(workspaceName string) string {
	return workspaceName + FileExtension
}

// Folder is one entry of the folders list.
type Folder struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Task is one entry of a task set. Members other than the four known ones
// are kept in Extra so user-defined tasks survive a rewrite intact.
type Task struct {
	Label   string
	Type    string
	Command string
	Args    []string
	Extra   map[string]json.RawMessage
}

// TaskSet is the value of the top-level tasks key.
type TaskSet struct {
	Version string
	Tasks   []Task
	Extra   map[string]json.RawMessage
}

// Document is a whole workspace file.
type Document struct {
	Folders []Folder
	Tasks   *TaskSet
	// Extra holds unrecognized top-level keys. Values are never inspected.
	Extra map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Folders: []Folder{},
		Extra:   map[string]json.RawMessage{},
	}
}
