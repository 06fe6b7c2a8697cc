package book

import (
	"fmt"
	"strings"
)

// MaxDisplayNarrators caps the narrator names kept for display.
const MaxDisplayNarrators = 5

// narratorContinuation marks a truncated narrator list.
const narratorContinuation = "..."

// Metadata is the book record assembled from one catalog fetch. It is not
// modified after the fetch completes.
type Metadata struct {
	ASIN      string
	Title     string
	Author    string
	Year      string
	Publisher string
	// LengthMinutes is zero when the catalog has no runtime.
	LengthMinutes int
	// Narrators holds at most MaxDisplayNarrators names followed by a
	// continuation marker when the catalog listed more.
	Narrators []string
	// Chapters is nil when chapters were not requested.
	Chapters []Chapter
}

// DisplayNarrators truncates names to MaxDisplayNarrators entries and appends
// the continuation marker when names were dropped.
func DisplayNarrators(names []string) []string {
	out := make([]string, 0, min(len(names), MaxDisplayNarrators)+1)
	for i, name := range names {
		if i == MaxDisplayNarrators {
			out = append(out, narratorContinuation)
			break
		}
		out = append(out, name)
	}
	return out
}

// NarratorLine joins the display narrators with ", ".
func (m Metadata) NarratorLine() string {
	return strings.Join(m.Narrators, ", ")
}

// LengthLine renders the runtime as HH:MM.
func (m Metadata) LengthLine() string {
	hours, minutes := m.LengthMinutes/60, m.LengthMinutes%60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// YearFromReleaseDate returns the portion of an ISO date before the first '-'.
func YearFromReleaseDate(releaseDate string) string {
	year, _, _ := strings.Cut(strings.TrimSpace(releaseDate), "-")
	return year
}
