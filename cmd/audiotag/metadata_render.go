package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"audiotag/internal/book"
	"audiotag/internal/pipeline"
)

func metadataRows(meta book.Metadata) [][]string {
	rows := [][]string{
		{"ASIN", meta.ASIN},
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Year", meta.Year},
	}
	if meta.LengthMinutes > 0 {
		rows = append(rows, []string{"Length", meta.LengthLine()})
	}
	if line := meta.NarratorLine(); line != "" {
		rows = append(rows, []string{"Narrators", line})
	}
	if meta.Publisher != "" {
		rows = append(rows, []string{"Publisher", meta.Publisher})
	}
	return rows
}

func renderMetadata(w io.Writer, meta book.Metadata, includeChapters bool) {
	fmt.Fprintln(w, renderKeyValueTable(metadataRows(meta)))
	if includeChapters && len(meta.Chapters) > 0 {
		fmt.Fprintln(w, renderChapters(meta.Chapters))
	}
}

func renderChapters(chapters []book.Chapter) string {
	rows := make([][]string, 0, len(chapters))
	for i, ch := range chapters {
		rows = append(rows, []string{strconv.Itoa(i + 1), ch.Timestamp, strings.TrimSpace(ch.Title)})
	}
	return renderTable([]string{"#", "Start", "Title"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}

func renderSummary(w io.Writer, summary pipeline.Summary) {
	rows := metadataRows(summary.Metadata)
	rows = append(rows, []string{"Merge", yesNo(summary.Merge)})
	if summary.IncludeChapters {
		rows = append(rows, []string{"Chapters", fmt.Sprintf("Importing %d chapters.", len(summary.Metadata.Chapters))})
	} else {
		rows = append(rows, []string{"Chapters", "Not importing chapters."})
	}
	rows = append(rows, []string{"Destination", summary.OutputPath})
	fmt.Fprintln(w, renderKeyValueTable(rows))
}
