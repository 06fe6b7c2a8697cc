// Package workspace manages the per-run scratch directory that holds every
// intermediate artifact (manifest, merged container, tagged container).
//
// The directory is created inside the destination directory so the final
// artifact can be renamed into place without crossing filesystems, and it is
// removed with everything beneath it when the run ends.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const dirPattern = ".audiotag-*"

// Workspace is a scratch directory scoped to one run.
type Workspace struct {
	path      string
	closeOnce sync.Once
	closeErr  error
}

// Acquire creates a new workspace inside parent, which must already exist.
func Acquire(parent string) (*Workspace, error) {
	parent = strings.TrimSpace(parent)
	if parent == "" {
		return nil, errors.New("workspace parent directory required")
	}
	dir, err := os.MkdirTemp(parent, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{path: dir}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Join returns a path for name inside the workspace.
func (w *Workspace) Join(name string) string {
	return filepath.Join(w.path, name)
}

// Close removes the workspace and everything beneath it. Repeated calls
// return the first result.
func (w *Workspace) Close() error {
	if w == nil {
		return nil
	}
	w.closeOnce.Do(func() {
		if err := os.RemoveAll(w.path); err != nil {
			w.closeErr = fmt.Errorf("remove workspace %s: %w", w.path, err)
		}
	})
	return w.closeErr
}

// With acquires a workspace under parent, runs fn, and removes the workspace
// whether fn returns, fails, or panics. A removal failure is joined onto the
// error from fn.
func With(parent string, fn func(*Workspace) error) (err error) {
	ws, err := Acquire(parent)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ws.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	return fn(ws)
}
