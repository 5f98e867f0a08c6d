package workspace

// TaskOptions is the configuration a maintenance task must reproduce.
type TaskOptions struct {
	// Name is the custom workspace name; empty when the default is in use.
	Name string

	// ExcludeCurrent is set when the current directory entry is omitted.
	ExcludeCurrent bool

	// ScanPath is the path to scan, as given by the user.
	ScanPath string
}

// TaskArgs returns the command-line arguments that re-run the tool with opts.
// The order is fixed so identical options always yield identical arguments.
func TaskArgs(opts TaskOptions) []string {
	args := []string{}
	if opts.Name != "" {
		args = append(args, "--name", opts.Name)
	}
	if opts.ExcludeCurrent {
		args = append(args, "--exclude-current")
	}
	return append(args, "--path", opts.ScanPath)
}

// NewUpdateTask builds the maintenance task. executable is the path of the
// running tool; FallbackCommand is used when it is empty.
func NewUpdateTask(executable string, opts TaskOptions) Task {
	if executable == "" {
		executable = FallbackCommand
	}
	return Task{
		Label:   UpdateTaskLabel,
		Type:    UpdateTaskType,
		Command: executable,
		Args:    TaskArgs(opts),
	}
}

// NewTaskSet returns a task set holding only task.
func NewTaskSet(task Task) *TaskSet {
	return &TaskSet{
		Version: TaskSetVersion,
		Tasks:   []Task{task},
	}
}

// MergeTasks returns a copy of existing with every task labeled like task
// removed and task appended. A nil existing set yields a new one.
func MergeTasks(existing *TaskSet, task Task) *TaskSet {
	if existing == nil {
		return NewTaskSet(task)
	}

	merged := &TaskSet{
		Version: existing.Version,
		Tasks:   make([]Task, 0, len(existing.Tasks)+1),
		Extra:   existing.Extra,
	}
	if merged.Version == "" {
		merged.Version = TaskSetVersion
	}
	for _, t := range existing.Tasks {
		if t.Label != task.Label {
			merged.Tasks = append(merged.Tasks, t)
		}
	}
	merged.Tasks = append(merged.Tasks, task)
	return merged
}
