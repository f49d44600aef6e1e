package codegen

import (
	"strings"

	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/theme"
	"github.com/Rana718/nitrix/internal/types"
)

func emitHTML(table types.Table, headers []string, th types.Theme) string {
	return gencommon.Build(func(b *strings.Builder) {
		b.WriteString("<h2>")
		b.WriteString(table.Name)
		b.WriteString("</h2>\n<table class=\"")
		b.WriteString(theme.Resolve(theme.Table, th))
		b.WriteString("\">\n  <thead><tr>")
		for _, h := range headers {
			b.WriteString("<th>")
			b.WriteString(h)
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead>\n  <tbody>")
		for i, row := range table.Rows {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString("<tr>")
			for _, h := range headers {
				b.WriteString("<td>")
				b.WriteString(gencommon.CellText(row[h]))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>\n</table>")
	})
}
