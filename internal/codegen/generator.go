// Package codegen turns one table into HTML, React or React Native source
// text, with the row data frozen into the output.
package codegen

import (
	"fmt"
	"strings"

	"github.com/Rana718/nitrix/internal/types"
)

type emitter func(table types.Table, headers []string, theme types.Theme) string

var emitters = map[types.Format]emitter{
	types.FormatHTML:        emitHTML,
	types.FormatReact:       emitReact,
	types.FormatReactNative: emitReactNative,
}

// Generate renders a single table in the given format. The column name list
// is derived once and shared by every row.
func Generate(table types.Table, format types.Format, theme types.Theme) (string, error) {
	emit, ok := emitters[format]
	if !ok {
		return "", unsupported(format)
	}
	return emit(table, table.ColumnNames(), theme), nil
}

// GenerateAll renders every table in input order, separated by one blank line.
func GenerateAll(tables []types.Table, format types.Format, theme types.Theme) (string, error) {
	emit, ok := emitters[format]
	if !ok {
		return "", unsupported(format)
	}

	parts := make([]string, len(tables))
	for i, table := range tables {
		parts[i] = emit(table, table.ColumnNames(), theme)
	}
	return strings.Join(parts, "\n\n"), nil
}

// CodeFileName is the download name for a generated code blob.
func CodeFileName(format types.Format) string {
	return fmt.Sprintf("%s-code-nitrix.%s", format, format.Extension())
}

// ArchiveName is the download name for a project archive.
func ArchiveName(format types.Format, theme types.Theme) string {
	return fmt.Sprintf("%s-%s-nitrix-project.zip", format, theme)
}

func unsupported(format types.Format) error {
	return fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
}
