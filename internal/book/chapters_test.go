package book_test

import (
	"reflect"
	"testing"

	"audiotag/internal/book"
)

func TestNormalizeChaptersComputesClosedRanges(t *testing.T) {
	raw := []book.RawChapter{
		{StartOffsetMs: 0, LengthMs: 5000, Title: "One"},
		{StartOffsetMs: 5000, LengthMs: 5000, Title: "Two"},
		{StartOffsetMs: 10000, LengthMs: 3723004, Title: "Three"},
	}

	chapters := book.NormalizeChapters(raw)
	if len(chapters) != len(raw) {
		t.Fatalf("expected %d chapters, got %d", len(raw), len(chapters))
	}
	for i, ch := range chapters {
		if ch.EndMs != raw[i].StartOffsetMs+raw[i].LengthMs-1 {
			t.Fatalf("chapter %d: end %d != start+length-1", i, ch.EndMs)
		}
		if ch.Title != raw[i].Title {
			t.Fatalf("chapter %d: order not preserved, got %q", i, ch.Title)
		}
	}
	if chapters[0].EndMs != 4999 || chapters[1].StartMs != 5000 || chapters[1].EndMs != 9999 {
		t.Fatalf("unexpected ranges: %+v", chapters[:2])
	}
}

func TestNormalizeChaptersDoesNotCorrectBoundaries(t *testing.T) {
	raw := []book.RawChapter{
		{StartOffsetMs: 0, LengthMs: 6000, Title: "Overlapping"},
		{StartOffsetMs: 5000, LengthMs: 1000, Title: "Next"},
		{StartOffsetMs: 9000, LengthMs: 0, Title: "Empty"},
	}
	chapters := book.NormalizeChapters(raw)
	if chapters[0].EndMs != 5999 {
		t.Fatalf("expected overlap to pass through, got end %d", chapters[0].EndMs)
	}
	if chapters[2].EndMs != 8999 {
		t.Fatalf("expected zero-length chapter to produce end < start, got %d", chapters[2].EndMs)
	}

	issues := book.CheckBoundaries(chapters)
	want := []book.BoundaryIssue{
		{Index: 1, Kind: "overlap", DeltaMs: 1000},
		{Index: 2, Kind: "empty"},
		{Index: 2, Kind: "gap", DeltaMs: 3000},
	}
	if !reflect.DeepEqual(issues, want) {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestNormalizeChaptersEmpty(t *testing.T) {
	if got := book.NormalizeChapters(nil); len(got) != 0 {
		t.Fatalf("expected no chapters, got %+v", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := map[int64]string{
		0:        "00:00:00.000",
		999:      "00:00:00.999",
		61001:    "00:01:01.001",
		3723004:  "01:02:03.004",
		36000000: "10:00:00.000",
		-5:       "00:00:00.000",
	}
	for ms, want := range tests {
		if got := book.FormatTimestamp(ms); got != want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", ms, got, want)
		}
	}
}
