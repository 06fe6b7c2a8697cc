package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"audiotag/internal/logging"
)

// SweepResult contains the outcome of a leftover workspace sweep.
type SweepResult struct {
	Removed []string
	Errors  []SweepError
}

// SweepError pairs a directory path with its removal error.
type SweepError struct {
	Path  string
	Error error
}

// SweepStale removes workspaces under parent older than maxAge. Such
// directories only survive when a run was killed before its cleanup ran.
// Entries that are not workspaces are never touched.
func SweepStale(parent string, maxAge time.Duration, logger *slog.Logger) SweepResult {
	result := SweepResult{}

	parent = strings.TrimSpace(parent)
	if parent == "" {
		return result
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, SweepError{Path: parent, Error: err})
		}
		return result
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(dirPattern, entry.Name()); !matched {
			continue
		}

		dirPath := filepath.Join(parent, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, SweepError{Path: dirPath, Error: err})
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.RemoveAll(dirPath); err != nil {
			result.Errors = append(result.Errors, SweepError{Path: dirPath, Error: err})
			if logger != nil {
				logger.Warn("failed to remove leftover workspace",
					logging.String("path", dirPath),
					logging.Error(err),
					logging.String(logging.FieldEventType, "workspace_sweep_failed"),
					logging.String(logging.FieldErrorHint, "remove the directory manually"),
					logging.String(logging.FieldImpact, "disk space not reclaimed"),
				)
			}
			continue
		}
		result.Removed = append(result.Removed, dirPath)
		if logger != nil {
			logger.Info("removed leftover workspace",
				logging.String("path", dirPath),
				logging.Duration("age", time.Since(info.ModTime())),
				logging.String(logging.FieldEventType, "workspace_sweep"),
			)
		}
	}

	return result
}
