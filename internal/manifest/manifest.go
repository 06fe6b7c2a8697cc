// Package manifest renders book metadata into the ffmpeg metadata file
// (";FFMETADATA1") that the tagging stage maps onto the output container.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"audiotag/internal/book"
	"audiotag/internal/services"
)

// FileName is the manifest's name inside the workspace.
const FileName = "metadata.txt"

const header = ";FFMETADATA1"

// WriteError reports a manifest that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write manifest %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, services.ErrFileWrite) match manifest failures.
func (e *WriteError) Is(target error) bool {
	return target == services.ErrFileWrite
}

// Render returns the manifest text for meta. Chapter blocks follow
// meta.Chapters order and are omitted when includeChapters is false.
func Render(meta book.Metadata, includeChapters bool) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	writeTag(&buf, "album", meta.Title)
	writeTag(&buf, "album_artist", meta.Author)
	writeTag(&buf, "artist", meta.Author)
	writeTag(&buf, "year", meta.Year)

	if includeChapters {
		for _, ch := range meta.Chapters {
			buf.WriteString("\n\n[CHAPTER]\nTIMEBASE=1/1000")
			buf.WriteString("\nSTART=")
			buf.WriteString(strconv.FormatInt(ch.StartMs, 10))
			buf.WriteString("\nEND=")
			buf.WriteString(strconv.FormatInt(ch.EndMs, 10))
			writeTag(&buf, "title", ch.Title)
		}
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Write renders meta into <workspaceDir>/metadata.txt and returns its path.
func Write(meta book.Metadata, workspaceDir string, includeChapters bool) (string, error) {
	path := filepath.Join(workspaceDir, FileName)
	if err := os.WriteFile(path, Render(meta, includeChapters), 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

func writeTag(buf *bytes.Buffer, key, value string) {
	buf.WriteByte('\n')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(escapeValue(value))
}

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	"=", `\=`,
	";", `\;`,
	"#", `\#`,
	"\n", "\\\n",
)

// escapeValue backslash-escapes the characters the ffmetadata grammar
// treats as syntax.
func escapeValue(value string) string {
	value = strings.ReplaceAll(value, "\r", "")
	return valueEscaper.Replace(value)
}
