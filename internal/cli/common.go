package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/workspace-manager/internal/config"
	"github.com/danieljhkim/workspace-manager/internal/engine"
	"github.com/danieljhkim/workspace-manager/internal/fsops"
	"github.com/danieljhkim/workspace-manager/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), hash.NewXXHasher())
}

// loadOptions resolves the effective options for cmd: explicitly set flags,
// then environment, then the config file, then defaults.
func loadOptions(cmd *cobra.Command, flags *rootFlags, cwd string) (config.Options, error) {
	path := flags.configFile
	required := path != ""
	if !required {
		path = filepath.Join(cwd, config.DefaultConfigFile)
	}

	file, err := config.LoadFile(fsops.NewRealFS(), path, required)
	if err != nil {
		return config.Options{}, err
	}

	return config.Resolve(flags.opts, cmd.Flags(), file, os.Getenv), nil
}

// newGenerateRequest builds the engine request for the current directory.
func newGenerateRequest(cmd *cobra.Command, flags *rootFlags) (*engine.GenerateRequest, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	opts, err := loadOptions(cmd, flags, cwd)
	if err != nil {
		return nil, err
	}

	return &engine.GenerateRequest{
		CWD:        cwd,
		Options:    opts,
		Executable: engine.ResolveExecutable(),
		DryRun:     flags.dryRun,
	}, nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
