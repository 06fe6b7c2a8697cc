package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testASIN = "B000TEST01"

const bookJSON = `{
  "asin": "B000TEST01",
  "title": "The Test Book",
  "authors": [{"name": "Jane Author"}],
  "narrators": [{"name": "Reader One"}, {"name": "Reader Two"}],
  "publisherName": "Test House",
  "releaseDate": "2021-03-04",
  "runtimeLengthMin": 125
}`

const chaptersJSON = `{
  "asin": "B000TEST01",
  "chapters": [
    {"lengthMs": 5000, "startOffsetMs": 0, "title": "Opening Credits"},
    {"lengthMs": 3600000, "startOffsetMs": 5000, "title": "Chapter 1"}
  ]
}`

// stubFFmpeg copies the first input to the last argument.
const stubFFmpeg = "#!/bin/sh\nfor last; do :; done\ncp \"$3\" \"$last\"\n"

// stubMerger writes a fixed payload to the --output-file target.
const stubMerger = "#!/bin/sh\nfor last; do :; done\nprintf merged > \"${last#--output-file=}\"\n"

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputRoot string
	input      string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/books/" + testASIN:
			_, _ = w.Write([]byte(bookJSON))
		case "/books/" + testASIN + "/chapters":
			_, _ = w.Write([]byte(chaptersJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":404,"error":"Not Found","message":"Book not found"}`))
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("AUDIOTAG_CATALOG_URL", "")

	binDir := filepath.Join(base, "bin")
	ffmpeg := writeScript(t, filepath.Join(binDir, "ffmpeg"), stubFFmpeg)
	merger := writeScript(t, filepath.Join(binDir, "m4b-tool"), stubMerger)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "audiotag.toml"),
		outputRoot: filepath.Join(base, "library"),
		input:      filepath.Join(base, "in", "book.mp3"),
	}
	content := fmt.Sprintf(
		"[catalog]\nbase_url = %q\ntimeout_seconds = 5\n\n[tools]\nffmpeg_binary = %q\nmerge_binary = %q\n\n[library]\noutput_root = %q\nlock_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		server.URL, ffmpeg, merger, env.outputRoot, filepath.Join(base, "locks"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(env.input), 0o755); err != nil {
		t.Fatalf("mkdir input: %v", err)
	}
	if err := os.WriteFile(env.input, []byte("original audio"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return env
}

func writeScript(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func (e *cliTestEnv) destDir() string {
	return filepath.Join(e.outputRoot, "Jane Author", "The Test Book "+testASIN)
}
