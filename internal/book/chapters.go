package book

import "fmt"

// RawChapter is a chapter as reported by the catalog: an offset and a length
// in milliseconds.
type RawChapter struct {
	StartOffsetMs int64
	LengthMs      int64
	Title         string
}

// Chapter is a closed [StartMs, EndMs] millisecond range.
type Chapter struct {
	StartMs int64
	EndMs   int64
	Title   string
	// Timestamp is StartMs rendered as HH:MM:SS.mmm for previews. It is not
	// written to the manifest.
	Timestamp string
}

// NormalizeChapters converts raw catalog chapters into closed ranges in
// catalog order. End is start+length-1 and never looks at the neighbouring
// chapter, so gaps and overlaps from the catalog pass through unchanged.
func NormalizeChapters(raw []RawChapter) []Chapter {
	out := make([]Chapter, 0, len(raw))
	for _, rc := range raw {
		out = append(out, Chapter{
			StartMs:   rc.StartOffsetMs,
			EndMs:     rc.StartOffsetMs + rc.LengthMs - 1,
			Title:     rc.Title,
			Timestamp: FormatTimestamp(rc.StartOffsetMs),
		})
	}
	return out
}

// FormatTimestamp renders a millisecond offset as HH:MM:SS.mmm.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds, millis := ms/1000, ms%1000
	minutes, seconds := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// BoundaryIssue describes a chapter whose range does not line up with its
// predecessor, or whose range is empty.
type BoundaryIssue struct {
	Index int
	Kind  string // "gap", "overlap", or "empty"
	// DeltaMs is the gap or overlap size; zero for empty ranges.
	DeltaMs int64
}

// CheckBoundaries reports gaps, overlaps, and empty ranges without altering
// the chapters.
func CheckBoundaries(chapters []Chapter) []BoundaryIssue {
	var issues []BoundaryIssue
	for i, ch := range chapters {
		if ch.EndMs < ch.StartMs {
			issues = append(issues, BoundaryIssue{Index: i, Kind: "empty"})
		}
		if i == 0 {
			continue
		}
		expected := chapters[i-1].EndMs + 1
		switch {
		case ch.StartMs > expected:
			issues = append(issues, BoundaryIssue{Index: i, Kind: "gap", DeltaMs: ch.StartMs - expected})
		case ch.StartMs < expected:
			issues = append(issues, BoundaryIssue{Index: i, Kind: "overlap", DeltaMs: expected - ch.StartMs})
		}
	}
	return issues
}
