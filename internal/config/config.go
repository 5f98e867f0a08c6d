// Package config resolves the options of a workspace-manager run.
//
// Options come from four layers, highest precedence first:
//   - command-line flags that were explicitly set
//   - environment variables (WORKSPACE_MANAGER_PATH, WORKSPACE_MANAGER_NAME)
//   - a YAML config file (.workspace-manager.yaml or --config)
//   - built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/workspace-manager/internal/fsops"
	"github.com/danieljhkim/workspace-manager/internal/workspace"
)

// Flag names shared by the CLI and the resolver.
const (
	FlagPath           = "path"
	FlagName           = "name"
	FlagExcludeCurrent = "exclude-current"
	FlagUpdateTask     = "update-task"
	FlagStrict         = "strict"
)

// Environment variables consulted by Resolve.
const (
	EnvPath = "WORKSPACE_MANAGER_PATH"
	EnvName = "WORKSPACE_MANAGER_NAME"
)

// DefaultConfigFile is looked up in the current directory when no config
// file is given explicitly.
const DefaultConfigFile = ".workspace-manager.yaml"

// DefaultScanPath is scanned when nothing else is configured.
const DefaultScanPath = "."

// Options is the effective configuration of one run.
type Options struct {
	// ScanPath is the directory whose subdirectories become folders.
	ScanPath string

	// Name is the custom workspace name. Empty means the base name of the
	// current directory.
	Name string

	// ExcludeCurrent omits the current-directory folder entry.
	ExcludeCurrent bool

	// UpdateTask replaces the maintenance task in an existing file.
	UpdateTask bool

	// Strict fails on an unparsable existing file instead of replacing it.
	Strict bool
}

// Default returns the built-in defaults.
func Default() Options {
	return Options{ScanPath: DefaultScanPath}
}

// File mirrors the YAML config file. Unset keys are nil.
type File struct {
	Path           *string `yaml:"path"`
	Name           *string `yaml:"name"`
	ExcludeCurrent *bool   `yaml:"exclude_current"`
	UpdateTask     *bool   `yaml:"update_task"`
	Strict         *bool   `yaml:"strict"`
}

// LoadFile reads a YAML config file. When required is false a missing file
// yields (nil, nil).
func LoadFile(fs fsops.FS, path string, required bool) (*File, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty document decodes to EOF.
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &f, nil
}

// FlagSet reports which flags were set on the command line.
// *pflag.FlagSet satisfies it.
type FlagSet interface {
	Changed(name string) bool
}

// Resolve layers flags over environment over file over defaults. Only
// flags reported as changed by set override lower layers; getenv may be nil.
func Resolve(flags Options, set FlagSet, file *File, getenv func(string) string) Options {
	opts := Default()

	if file != nil {
		if file.Path != nil {
			opts.ScanPath = *file.Path
		}
		if file.Name != nil {
			opts.Name = *file.Name
		}
		if file.ExcludeCurrent != nil {
			opts.ExcludeCurrent = *file.ExcludeCurrent
		}
		if file.UpdateTask != nil {
			opts.UpdateTask = *file.UpdateTask
		}
		if file.Strict != nil {
			opts.Strict = *file.Strict
		}
	}

	if getenv != nil {
		if v := getenv(EnvPath); v != "" {
			opts.ScanPath = v
		}
		if v := getenv(EnvName); v != "" {
			opts.Name = v
		}
	}

	changed := func(name string) bool { return set != nil && set.Changed(name) }
	if changed(FlagPath) {
		opts.ScanPath = flags.ScanPath
	}
	if changed(FlagName) {
		opts.Name = flags.Name
	}
	if changed(FlagExcludeCurrent) {
		opts.ExcludeCurrent = flags.ExcludeCurrent
	}
	if changed(FlagUpdateTask) {
		opts.UpdateTask = flags.UpdateTask
	}
	if changed(FlagStrict) {
		opts.Strict = flags.Strict
	}
	return opts
}

// Validate checks the options for values that cannot produce a workspace.
func (o Options) Validate() error {
	if strings.TrimSpace(o.ScanPath) == "" {
		return fmt.Errorf("scan path must not be empty")
	}
	if o.Name != "" {
		if err := validateName(o.Name); err != nil {
			return err
		}
	}
	return nil
}

// WorkspaceName returns the custom name, or the base name of cwd.
func (o Options) WorkspaceName(cwd string) (string, error) {
	if o.Name != "" {
		return o.Name, nil
	}
	name := filepath.Base(filepath.Clean(cwd))
	if err := validateName(name); err != nil {
		return "", fmt.Errorf("cannot derive workspace name from %q, use --name: %w", cwd, err)
	}
	return name, nil
}

// TaskOptions returns the subset of options the maintenance task reproduces.
func (o Options) TaskOptions() workspace.TaskOptions {
	return workspace.TaskOptions{
		Name:           o.Name,
		ExcludeCurrent: o.ExcludeCurrent,
		ScanPath:       o.ScanPath,
	}
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid workspace name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid workspace name %q: must not contain path separators", name)
	}
	return nil
}
