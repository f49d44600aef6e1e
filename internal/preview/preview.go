package preview

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
)

const DefaultLimit = 5

// formatValue prints an explicit null as NULL. A key the row lacks stays
// blank.
func formatValue(v any, present bool) string {
	if !present {
		return ""
	}
	if v == nil {
		return "NULL"
	}
	return gencommon.CellText(v)
}

// Render writes the first limit rows of t as a console table. A limit of zero
// or less falls back to DefaultLimit.
func Render(w io.Writer, t types.Table, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if _, err := fmt.Fprintln(w, text.Bold.Sprint(t.Name)); err != nil {
		return err
	}

	cols := t.ColumnNames()
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	shown := t.Rows
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, r := range shown {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			v, ok := r[col]
			row[i] = formatValue(v, ok)
		}
		tw.AppendRow(row)
	}

	if len(t.Rows) > limit {
		tw.SetCaption("Showing first %d of %d rows.", limit, len(t.Rows))
	}
	tw.Render()
	return nil
}

// RenderAll previews every table, separated by a blank line.
func RenderAll(w io.Writer, tables []types.Table, limit int) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Render(w, t, limit); err != nil {
			return err
		}
	}
	return nil
}
