package integration

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/workspace-manager/internal/config"
	"github.com/danieljhkim/workspace-manager/internal/engine"
	"github.com/danieljhkim/workspace-manager/internal/fsops"
	"github.com/danieljhkim/workspace-manager/internal/hash"
)

// errInjected is returned by recordingFS for operations set to fail.
var errInjected = errors.New("injected failure")

// recordingFS wraps the real filesystem, records every call in order and
// can be told to fail specific operations.
type recordingFS struct {
	inner fsops.FS

	mu     sync.Mutex
	calls  []string
	failOn map[string]bool
}

func newRecordingFS() *recordingFS {
	return &recordingFS{
		inner:  fsops.NewRealFS(),
		failOn: make(map[string]bool),
	}
}

func (fs *recordingFS) record(op string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.calls = append(fs.calls, op)
	if fs.failOn[op] {
		return errInjected
	}
	return nil
}

func (fs *recordingFS) ops() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.calls...)
}

func (fs *recordingFS) Stat(path string) (os.FileInfo, error) {
	if err := fs.record("Stat"); err != nil {
		return nil, err
	}
	return fs.inner.Stat(path)
}

func (fs *recordingFS) ReadDir(path string) ([]os.DirEntry, error) {
	if err := fs.record("ReadDir"); err != nil {
		return nil, err
	}
	return fs.inner.ReadDir(path)
}

func (fs *recordingFS) ReadFile(path string) ([]byte, error) {
	if err := fs.record("ReadFile"); err != nil {
		return nil, err
	}
	return fs.inner.ReadFile(path)
}

func (fs *recordingFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if err := fs.record("AtomicWrite"); err != nil {
		return err
	}
	return fs.inner.AtomicWrite(path, data, perm)
}

// setupProject creates a canonical project directory containing dirs.
func setupProject(t *testing.T, dirs ...string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	project := filepath.Join(root, "proj")
	require.NoError(t, os.Mkdir(project, 0755))
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(project, d), 0755))
	}
	return project
}

func newRequest(cwd string, opts config.Options) *engine.GenerateRequest {
	return &engine.GenerateRequest{
		CWD:        cwd,
		Options:    opts,
		Executable: "/usr/local/bin/workspace-manager",
	}
}

func newEngine(fs fsops.FS) *engine.Engine {
	return engine.New(fs, hash.NewXXHasher())
}
