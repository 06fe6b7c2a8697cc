package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audiotag/internal/services"
	"audiotag/internal/textutil"
)

const (
	unknownAuthor = "Unknown Author"
	unknownTitle  = "Untitled"
)

// DestinationDir returns <root>/<author>/<title> <asin>. Author and title keep
// their catalog spelling; only path separators are replaced so a value cannot
// escape root.
func DestinationDir(root, author, title, asin string) string {
	authorDir := textutil.SanitizePathSegment(author, unknownAuthor)
	bookDir := textutil.SanitizePathSegment(strings.TrimSpace(title)+" "+strings.TrimSpace(asin), asin)
	return filepath.Join(root, authorDir, bookDir)
}

// OutputFileName returns <title><ext> for the final artifact.
func OutputFileName(title, asin, ext string) string {
	return textutil.SanitizePathSegment(title, textutil.SanitizePathSegment(asin, unknownTitle)) + ext
}

// relocate moves src over dest with a single rename, replacing any existing
// file. Both paths must be on the same filesystem.
func relocate(src, dest string) error {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return services.Wrap(services.ErrFileWrite, "relocate", "replace target",
			fmt.Sprintf("%s is a directory", dest), nil)
	}
	if err := os.Rename(src, dest); err != nil {
		return services.Wrap(services.ErrFileWrite, "relocate", "rename", "move tagged file into place", err)
	}
	return nil
}
