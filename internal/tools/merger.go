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

// MergedFileName is the name of the merge tool's output inside the workspace.
const MergedFileName = "merged.m4b"

// Merger combines a directory of tracks (or converts a single file) into one
// m4b container.
type Merger struct {
	runner
}

// NewMerger constructs a merger for the m4b-tool binary.
func NewMerger(binary string, timeout time.Duration, opts ...Option) (*Merger, error) {
	r, err := newRunner(binary, timeout, "merger", opts)
	if err != nil {
		return nil, err
	}
	return &Merger{runner: r}, nil
}

// Merge runs `merge <input> --output-file=<workspace>/merged.m4b` and returns
// the output path.
func (m *Merger) Merge(ctx context.Context, input, workspaceDir string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", errors.New("merge input required")
	}
	if strings.TrimSpace(workspaceDir) == "" {
		return "", errors.New("workspace directory required")
	}
	output := filepath.Join(workspaceDir, MergedFileName)
	if err := m.run(ctx, MergeArgs(input, output)); err != nil {
		return "", err
	}
	if _, err := os.Stat(output); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "merge", "verify output",
			fmt.Sprintf("%s produced no output file", m.binary), err)
	}
	return output, nil
}

// MergeArgs builds the merge tool's argument vector.
func MergeArgs(input, output string) []string {
	return []string{"merge", input, "--output-file=" + output}
}
