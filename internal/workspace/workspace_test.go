package workspace_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotag/internal/workspace"
)

func assertGone(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected %s to be removed, stat err=%v", path, err)
	}
}

func TestAcquireNestsUnderParent(t *testing.T) {
	parent := t.TempDir()
	ws, err := workspace.Acquire(parent)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	defer ws.Close()

	if filepath.Dir(ws.Path()) != parent {
		t.Fatalf("expected workspace under %s, got %s", parent, ws.Path())
	}
	if !strings.HasPrefix(filepath.Base(ws.Path()), ".audiotag-") {
		t.Fatalf("unexpected workspace name %s", ws.Path())
	}
	if ws.Join("metadata.txt") != filepath.Join(ws.Path(), "metadata.txt") {
		t.Fatal("Join did not resolve inside workspace")
	}
}

func TestAcquireRequiresExistingParent(t *testing.T) {
	if _, err := workspace.Acquire(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing parent")
	}
	if _, err := workspace.Acquire(" "); err == nil {
		t.Fatal("expected error for empty parent")
	}
}

func TestCloseRemovesContentsAndIsIdempotent(t *testing.T) {
	ws, err := workspace.Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	nested := ws.Join(filepath.Join("a", "b"))
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "f.m4b"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := ws.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	assertGone(t, ws.Path())
}

func TestWithRemovesWorkspaceOnSuccess(t *testing.T) {
	var seen string
	err := workspace.With(t.TempDir(), func(ws *workspace.Workspace) error {
		seen = ws.Path()
		return os.WriteFile(ws.Join("merged.m4b"), []byte("audio"), 0o644)
	})
	if err != nil {
		t.Fatalf("With returned error: %v", err)
	}
	assertGone(t, seen)
}

func TestWithRemovesWorkspaceOnError(t *testing.T) {
	boom := errors.New("boom")
	var seen string
	err := workspace.With(t.TempDir(), func(ws *workspace.Workspace) error {
		seen = ws.Path()
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	assertGone(t, seen)
}

func TestWithRemovesWorkspaceOnPanic(t *testing.T) {
	var seen string
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = workspace.With(t.TempDir(), func(ws *workspace.Workspace) error {
			seen = ws.Path()
			panic("adapter fault")
		})
	}()
	assertGone(t, seen)
}
