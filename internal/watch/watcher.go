// Package watch regenerates the workspace file whenever folders appear in or
// disappear from the scan root.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/danieljhkim/workspace-manager/internal/scan"
	"github.com/danieljhkim/workspace-manager/internal/workspace"
)

// DefaultDebounce is how long the watcher waits for the tree to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches the immediate children of one directory.
type Watcher struct {
	root       string
	debounce   time.Duration
	regenerate func(context.Context) error
}

// New creates a Watcher that calls regenerate once changes under root have
// been quiet for debounce.
func New(root string, debounce time.Duration, regenerate func(context.Context) error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:       filepath.Clean(root),
		debounce:   debounce,
		regenerate: regenerate,
	}
}

// Run blocks until ctx is done. Regeneration errors are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			slog.Error("error closing file watcher", "error", err)
		}
	}()

	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	slog.Info("watching for folder changes", "root", w.root)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("folder change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			slog.Info("regenerating workspace")
			if err := w.regenerate(ctx); err != nil {
				slog.Error("failed to regenerate workspace", "error", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("file watcher error", "error", err)
		}
	}
}

// relevant reports whether event can change the folder list. New entries
// count only when they are directories; removed or renamed entries count
// unless they are hidden or workspace files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Dir(filepath.Clean(event.Name)) != w.root {
		return false
	}
	if scan.IsHidden(event.Name) {
		return false
	}

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		return err == nil && info.IsDir()
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return !strings.HasSuffix(event.Name, workspace.FileExtension)
	default:
		return false
	}
}
