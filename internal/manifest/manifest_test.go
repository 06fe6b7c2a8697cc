package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotag/internal/book"
	"audiotag/internal/manifest"
	"audiotag/internal/services"
)

func sampleMetadata() book.Metadata {
	return book.Metadata{
		Title:  "T",
		Author: "A",
		Year:   "2020",
		Chapters: []book.Chapter{
			{StartMs: 0, EndMs: 4999, Title: "One"},
			{StartMs: 5000, EndMs: 9999, Title: "Two"},
		},
	}
}

func TestRenderWithChapters(t *testing.T) {
	got := string(manifest.Render(sampleMetadata(), true))
	want := `;FFMETADATA1
album=T
album_artist=A
artist=A
year=2020

[CHAPTER]
TIMEBASE=1/1000
START=0
END=4999
title=One

[CHAPTER]
TIMEBASE=1/1000
START=5000
END=9999
title=Two
`
	if got != want {
		t.Fatalf("unexpected manifest:\n%s\nwant:\n%s", got, want)
	}
	if strings.Index(got, "title=One") > strings.Index(got, "title=Two") {
		t.Fatal("chapter order not preserved")
	}
}

func TestRenderWithoutChapters(t *testing.T) {
	got := string(manifest.Render(sampleMetadata(), false))
	if strings.Contains(got, "[CHAPTER]") {
		t.Fatalf("expected no chapter blocks, got:\n%s", got)
	}
	if !strings.HasPrefix(got, ";FFMETADATA1\nalbum=T\n") {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestRenderEscapesSpecialCharacters(t *testing.T) {
	meta := book.Metadata{
		Title:  "Book=One; Part #2",
		Author: `Back\slash`,
		Year:   "2001",
		Chapters: []book.Chapter{
			{StartMs: 0, EndMs: 9, Title: "Line\nBreak"},
		},
	}
	got := string(manifest.Render(meta, true))
	for _, want := range []string{
		`album=Book\=One\; Part \#2`,
		`album_artist=Back\\slash`,
		"title=Line\\\nBreak",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in manifest:\n%s", want, got)
		}
	}
}

func TestWriteCreatesManifestInWorkspace(t *testing.T) {
	dir := t.TempDir()
	path, err := manifest.Write(sampleMetadata(), dir, true)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if path != filepath.Join(dir, manifest.FileName) {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if strings.Count(string(data), "[CHAPTER]") != 2 {
		t.Fatalf("expected two chapter blocks, got:\n%s", data)
	}
}

func TestWriteFailsForMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	_, err := manifest.Write(sampleMetadata(), dir, true)
	if err == nil {
		t.Fatal("expected error for missing workspace")
	}
	var writeErr *manifest.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteError, got %T", err)
	}
	if !errors.Is(err, services.ErrFileWrite) {
		t.Fatal("expected file write marker")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying not-exist error, got %v", err)
	}
}
