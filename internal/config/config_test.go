package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/workspace-manager/internal/fsops"
	"github.com/danieljhkim/workspace-manager/internal/workspace"
)

type changedSet map[string]bool

func (c changedSet) Changed(name string) bool { return c[name] }

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, ".", opts.ScanPath)
	assert.Empty(t, opts.Name)
	assert.False(t, opts.ExcludeCurrent)
	assert.False(t, opts.UpdateTask)
	assert.False(t, opts.Strict)
}

func TestResolve_Precedence(t *testing.T) {
	file := &File{
		Path:           strPtr("from-file"),
		Name:           strPtr("file-name"),
		ExcludeCurrent: boolPtr(true),
		Strict:         boolPtr(true),
	}
	env := map[string]string{EnvPath: "from-env"}
	getenv := func(k string) string { return env[k] }

	t.Run("defaults only", func(t *testing.T) {
		assert.Equal(t, Default(), Resolve(Options{}, nil, nil, nil))
	})

	t.Run("file over defaults", func(t *testing.T) {
		opts := Resolve(Options{}, changedSet{}, file, nil)
		assert.Equal(t, "from-file", opts.ScanPath)
		assert.Equal(t, "file-name", opts.Name)
		assert.True(t, opts.ExcludeCurrent)
		assert.True(t, opts.Strict)
		assert.False(t, opts.UpdateTask)
	})

	t.Run("env over file", func(t *testing.T) {
		opts := Resolve(Options{}, changedSet{}, file, getenv)
		assert.Equal(t, "from-env", opts.ScanPath)
		assert.Equal(t, "file-name", opts.Name)
	})

	t.Run("changed flags over everything", func(t *testing.T) {
		flags := Options{ScanPath: "from-flag", ExcludeCurrent: false, Name: "ignored"}
		opts := Resolve(flags, changedSet{FlagPath: true, FlagExcludeCurrent: true}, file, getenv)
		assert.Equal(t, "from-flag", opts.ScanPath)
		assert.False(t, opts.ExcludeCurrent)
		assert.Equal(t, "file-name", opts.Name, "unchanged flag must not override")
	})
}

func TestResolve_WithPflag(t *testing.T) {
	var flags Options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVarP(&flags.ScanPath, FlagPath, "p", DefaultScanPath, "")
	fs.StringVarP(&flags.Name, FlagName, "n", "", "")
	fs.BoolVarP(&flags.UpdateTask, FlagUpdateTask, "u", false, "")
	require.NoError(t, fs.Parse([]string{"-n", "mono", "-u"}))

	opts := Resolve(flags, fs, &File{Path: strPtr("src")}, nil)
	assert.Equal(t, Options{ScanPath: "src", Name: "mono", UpdateTask: true}, opts)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fs := fsops.NewRealFS()

	t.Run("full file", func(t *testing.T) {
		path := filepath.Join(dir, "full.yaml")
		require.NoError(t, os.WriteFile(path, []byte("path: repos\nname: mono\nexclude_current: true\nupdate_task: false\nstrict: true\n"), 0644))

		f, err := LoadFile(fs, path, true)
		require.NoError(t, err)
		assert.Equal(t, "repos", *f.Path)
		assert.Equal(t, "mono", *f.Name)
		assert.True(t, *f.ExcludeCurrent)
		assert.False(t, *f.UpdateTask)
		assert.True(t, *f.Strict)
	})

	t.Run("partial file", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: mono\n"), 0644))

		f, err := LoadFile(fs, path, true)
		require.NoError(t, err)
		assert.Nil(t, f.Path)
		assert.Equal(t, "mono", *f.Name)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		f, err := LoadFile(fs, path, true)
		require.NoError(t, err)
		assert.Equal(t, &File{}, f)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colour: blue\n"), 0644))

		_, err := LoadFile(fs, path, true)
		assert.Error(t, err)
	})

	t.Run("missing optional", func(t *testing.T) {
		f, err := LoadFile(fs, filepath.Join(dir, "nope.yaml"), false)
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := LoadFile(fs, filepath.Join(dir, "nope.yaml"), true)
		assert.Error(t, err)
	})
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"custom name", Options{ScanPath: ".", Name: "mono"}, false},
		{"empty path", Options{ScanPath: " "}, true},
		{"name with slash", Options{ScanPath: ".", Name: "a/b"}, true},
		{"name with backslash", Options{ScanPath: ".", Name: `a\b`}, true},
		{"dot name", Options{ScanPath: ".", Name: ".."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_WorkspaceName(t *testing.T) {
	name, err := Default().WorkspaceName(filepath.FromSlash("/home/dev/monorepo"))
	require.NoError(t, err)
	assert.Equal(t, "monorepo", name)

	name, err = Options{Name: "custom"}.WorkspaceName(filepath.FromSlash("/home/dev/monorepo"))
	require.NoError(t, err)
	assert.Equal(t, "custom", name)

	_, err = Default().WorkspaceName(string(filepath.Separator))
	assert.Error(t, err)
}

func TestOptions_TaskOptions(t *testing.T) {
	opts := Options{ScanPath: "src", Name: "n", ExcludeCurrent: true, UpdateTask: true, Strict: true}
	assert.Equal(t, workspace.TaskOptions{Name: "n", ExcludeCurrent: true, ScanPath: "src"}, opts.TaskOptions())
}
