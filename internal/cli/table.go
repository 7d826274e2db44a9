package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable creates a writer with plain ASCII borders. Headers are printed as
// given.
func newTable(header []string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(toRow(header))
	return t
}

func renderTable(header []string, rows [][]string) string {
	t := newTable(header)
	for _, r := range rows {
		t.AppendRow(toRow(r))
	}
	return t.Render()
}

func renderCSV(header []string, rows [][]string) string {
	t := newTable(header)
	for _, r := range rows {
		t.AppendRow(toRow(r))
	}
	return t.RenderCSV()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
