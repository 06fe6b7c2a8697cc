package workspace_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"audiotag/internal/workspace"
)

func TestSweepStaleRemovesOnlyOldWorkspaces(t *testing.T) {
	parent := t.TempDir()
	old := filepath.Join(parent, ".audiotag-111")
	fresh := filepath.Join(parent, ".audiotag-222")
	other := filepath.Join(parent, "notes")
	artifact := filepath.Join(parent, "Book.m4b")
	for _, dir := range []string{old, fresh, other} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(artifact, []byte("final"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	past := time.Now().Add(-2 * time.Hour)
	for _, path := range []string{old, other} {
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	result := workspace.SweepStale(parent, time.Hour, nil)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
	if len(result.Removed) != 1 || result.Removed[0] != old {
		t.Fatalf("expected only %s removed, got %v", old, result.Removed)
	}
	for _, keep := range []string{fresh, other, artifact} {
		if _, err := os.Stat(keep); err != nil {
			t.Fatalf("expected %s to survive: %v", keep, err)
		}
	}
}

func TestSweepStaleMissingParent(t *testing.T) {
	result := workspace.SweepStale(filepath.Join(t.TempDir(), "missing"), 0, nil)
	if len(result.Removed) != 0 || len(result.Errors) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
