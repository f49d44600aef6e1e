package insights

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Rana718/nitrix/internal/types"
)

type ColumnInsight struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	// NullPercentage is the fraction of rows holding nil, in [0, 1].
	NullPercentage float64 `json:"nullPercentage"`
	UniqueValues   int     `json:"uniqueValues"`
}

type TableAnalysis struct {
	Name     string          `json:"name"`
	RowCount int             `json:"rowCount"`
	Columns  []ColumnInsight `json:"columns"`
}

func Analyze(tables []types.Table) []TableAnalysis {
	result := make([]TableAnalysis, len(tables))
	for i, t := range tables {
		result[i] = analyzeTable(t)
	}
	return result
}

func analyzeTable(t types.Table) TableAnalysis {
	rowCount := len(t.Rows)
	columns := make([]ColumnInsight, len(t.Columns))

	for i, col := range t.Columns {
		nullCount := 0
		seen := make(map[string]struct{}, rowCount)
		for _, row := range t.Rows {
			v, ok := row[col.Name]
			if !ok || v == nil {
				nullCount++
				continue
			}
			seen[valueKey(v)] = struct{}{}
		}

		var nullPct float64
		if rowCount > 0 {
			nullPct = float64(nullCount) / float64(rowCount)
		}

		columns[i] = ColumnInsight{
			Name:           col.Name,
			Type:           col.Type,
			Nullable:       col.Nullable,
			NullPercentage: nullPct,
			UniqueValues:   len(seen),
		}
	}

	return TableAnalysis{Name: t.Name, RowCount: rowCount, Columns: columns}
}

// valueKey identifies a value by kind and content, so 1 and "1" stay distinct.
// []byte is not comparable and goes through its string form.
func valueKey(v any) string {
	switch val := v.(type) {
	case []byte:
		return "bytes:" + string(val)
	case float64:
		if math.IsNaN(val) {
			return "float64:NaN"
		}
	}
	return fmt.Sprintf("%T:%v", v, v)
}

func Render(w io.Writer, analyses []TableAnalysis) error {
	for i, a := range analyses {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s (%d rows)\n", text.Bold.Sprint(a.Name), a.RowCount); err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		tw.Style().Format.Header = text.FormatDefault
		tw.AppendHeader(table.Row{"column", "type", "nullable", "null %", "unique"})
		for _, c := range a.Columns {
			tw.AppendRow(table.Row{
				c.Name,
				c.Type,
				c.Nullable,
				fmt.Sprintf("%.1f%%", c.NullPercentage*100),
				c.UniqueValues,
			})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		tw.Render()
	}
	return nil
}
