package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := newTableWriter(columns, rows, aligns)
	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)
	return tw.Render()
}

// renderKeyValueTable renders two-column label/value rows without a header.
func renderKeyValueTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	tw := newTableWriter(2, rows, nil)
	tw.Style().Options.SeparateRows = false
	return tw.Render()
}

func newTableWriter(columns int, rows [][]string, aligns []columnAlignment) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)
	return tw
}
