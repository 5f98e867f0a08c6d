package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))

	got, err := canonicalize(filepath.Join("a", "b"), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", "b"), got)

	got, err = canonicalize(filepath.Join("a", "..", "a"), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a"), got)

	got, err = canonicalize(root, "/elsewhere")
	require.NoError(t, err)
	assert.Equal(t, root, got)

	_, err = canonicalize("missing", root)
	assert.Error(t, err)
}

func TestCanonicalize_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	got, err := canonicalize("link", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "real"), got)
}
