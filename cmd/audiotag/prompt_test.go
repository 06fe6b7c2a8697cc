package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"audiotag/internal/book"
	"audiotag/internal/pipeline"
)

func TestPrompterAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		asks  int
		exits bool
	}{
		{"yes", "y\n", true, 1, false},
		{"upper no", "N\n", false, 1, true},
		{"retry then yes", "what\n\nyes\n", true, 3, false},
		{"eof", "", false, 1, false},
		{"answer without newline", "y", true, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)
			got, err := p.Confirm(context.Background(), pipeline.Summary{})
			if err != nil {
				t.Fatalf("Confirm returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Confirm = %v, want %v", got, tt.want)
			}
			if asks := strings.Count(out.String(), promptText); asks != tt.asks {
				t.Fatalf("prompted %d times, want %d", asks, tt.asks)
			}
			if hints := strings.Count(out.String(), retryText); hints != tt.asks-1 {
				t.Fatalf("printed %d retry hints, want %d", hints, tt.asks-1)
			}
			if exits := strings.Contains(out.String(), exitText); exits != tt.exits {
				t.Fatalf("exit notice printed=%v, want %v", exits, tt.exits)
			}
		})
	}
}

func TestPrompterPresentRendersSummary(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out)
	meta := book.Metadata{Title: "T", Author: "A", Chapters: []book.Chapter{{Title: "One"}, {Title: "Two"}}}
	p.Present(pipeline.Summary{
		Metadata:        meta,
		IncludeChapters: true,
		OutputPath:      "/lib/A/T X/T.m4b",
	})
	for _, want := range []string{"/lib/A/T X/T.m4b", "Importing 2 chapters."} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("summary missing %q: %s", want, out.String())
		}
	}
	if strings.Contains(out.String(), promptText) {
		t.Fatal("Present must not ask the question")
	}
}
