package codegen

import (
	"strings"

	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/theme"
	"github.com/Rana718/nitrix/internal/types"
)

// componentOptions switches between the standalone preview unit and the file
// written into an assembled project.
type componentOptions struct {
	exportName string
	module     bool
}

func emitReact(table types.Table, headers []string, th types.Theme) string {
	return emitComponent(table, headers, th, componentOptions{exportName: gencommon.Sanitize(table.Name)})
}

// GenerateComponentModule renders the React component for table as a
// standalone module exporting exportName. Header and body rows carry the
// row-context class of th.
func GenerateComponentModule(table types.Table, exportName string, th types.Theme) string {
	return emitComponent(table, table.ColumnNames(), th, componentOptions{exportName: exportName, module: true})
}

func emitComponent(table types.Table, headers []string, th types.Theme, opts componentOptions) string {
	rowAttr := ""
	if opts.module {
		if cls := theme.Resolve(theme.Row, th); cls != "" {
			rowAttr = ` className="` + cls + `"`
		}
	}

	return gencommon.Build(func(b *strings.Builder) {
		if opts.module {
			b.WriteString("import React from 'react';\n\n")
		}
		b.WriteString("export const ")
		b.WriteString(opts.exportName)
		b.WriteString(" = () => {\n  const data = ")
		b.WriteString(gencommon.Snapshot(table.Rows, headers))
		b.WriteString(";\n  return (\n    <div>\n      <h2>")
		b.WriteString(table.Name)
		b.WriteString("</h2>\n      <table className=\"")
		b.WriteString(theme.Resolve(theme.Table, th))
		b.WriteString("\">\n        <thead>\n          <tr")
		b.WriteString(rowAttr)
		b.WriteString(">")
		for _, h := range headers {
			b.WriteString("<th>")
			b.WriteString(h)
			b.WriteString("</th>")
		}
		b.WriteString("</tr>\n        </thead>\n        <tbody>\n          {data.map((row, i) => (\n            <tr key={i}")
		b.WriteString(rowAttr)
		b.WriteString(">\n              ")
		for _, h := range headers {
			b.WriteString("<td>{row[")
			b.WriteString(gencommon.QuoteKey(h))
			b.WriteString("]}</td>")
		}
		b.WriteString("\n            </tr>\n          ))}\n        </tbody>\n      </table>\n    </div>\n  );\n};")
		if opts.module {
			b.WriteByte('\n')
		}
	})
}
