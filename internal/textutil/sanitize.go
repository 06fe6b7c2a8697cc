package textutil

import (
	"runtime"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// segmentReplacer strips what the host filesystem cannot hold inside a
// single directory entry. Everything else, colons and question marks
// included, is kept as written.
var segmentReplacer = newSegmentReplacer(runtime.GOOS)

func newSegmentReplacer(goos string) *strings.Replacer {
	pairs := []string{"/", "-", "\x00", ""}
	if goos == "windows" {
		pairs = append(pairs, "\\", "-")
	}
	return strings.NewReplacer(pairs...)
}

// SanitizePathSegment makes name usable as a single directory entry. Path
// separators become dashes and NUL bytes are dropped; the result is
// NFC-normalized and trimmed. Dot-only names would escape or alias the parent
// directory, so they map to fallback as does an empty result.
func SanitizePathSegment(name, fallback string) string {
	cleaned := strings.TrimSpace(segmentReplacer.Replace(norm.NFC.String(strings.TrimSpace(name))))
	if strings.Trim(cleaned, ".") == "" {
		return fallback
	}
	return cleaned
}

// SanitizeToken converts a string to a lowercase filesystem-safe token.
// Letters are lowercased, digits and hyphens/underscores are kept, everything
// else becomes an underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}
