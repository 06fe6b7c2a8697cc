package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"audiotag/internal/services"
)

// TaggedBaseName is the base name of the tagger's output inside the
// workspace; the input's extension is appended.
const TaggedBaseName = "with_metadata"

// Tagger applies an ffmetadata manifest to an audio container without
// re-encoding.
type Tagger struct {
	runner
}

// NewTagger constructs a tagger for the ffmpeg binary.
func NewTagger(binary string, timeout time.Duration, opts ...Option) (*Tagger, error) {
	r, err := newRunner(binary, timeout, "tagger", opts)
	if err != nil {
		return nil, err
	}
	return &Tagger{runner: r}, nil
}

// Tag writes the manifest's tags (and chapters when includeChapters) onto
// input, producing <workspace>/with_metadata<ext>.
func (t *Tagger) Tag(ctx context.Context, input, manifestPath, workspaceDir string, includeChapters bool) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", errors.New("tag input required")
	}
	if strings.TrimSpace(manifestPath) == "" {
		return "", errors.New("manifest path required")
	}
	output := TaggedPath(workspaceDir, input)
	if err := t.run(ctx, TagArgs(input, manifestPath, output, includeChapters)); err != nil {
		return "", err
	}
	if _, err := os.Stat(output); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "tag", "verify output",
			fmt.Sprintf("%s produced no output file", t.binary), err)
	}
	return output, nil
}

// TaggedPath returns the tagger output path for input inside workspaceDir.
func TaggedPath(workspaceDir, input string) string {
	return filepath.Join(workspaceDir, TaggedBaseName+filepath.Ext(input))
}

// TagArgs builds the ffmpeg argument vector: audio streams from the first
// input, global metadata (and optionally chapters) from the manifest, stream
// copy, overwrite.
func TagArgs(input, manifestPath, output string, includeChapters bool) []string {
	args := []string{
		"-y",
		"-i", input,
		"-i", manifestPath,
		"-map", "0:a",
		"-map_metadata", "1",
	}
	if includeChapters {
		args = append(args, "-map_chapters", "1")
	}
	return append(args, "-c", "copy", output)
}
