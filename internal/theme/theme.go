// Package theme maps a theme selection to the Tailwind class strings used by
// the generated markup.
package theme

import "github.com/Rana718/nitrix/internal/types"

type Context int

const (
	Table Context = iota
	Row
	Body
)

func (c Context) String() string {
	switch c {
	case Table:
		return "table"
	case Row:
		return "row"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

// Resolve returns the class string for ctx under theme t. Unknown themes get
// the default arm of each context; unknown contexts resolve to "".
func Resolve(ctx Context, t types.Theme) string {
	switch ctx {
	case Table:
		return tableClass(t)
	case Row:
		return rowClass(t)
	case Body:
		return bodyClass(t)
	default:
		return ""
	}
}

func tableClass(t types.Theme) string {
	switch t {
	case types.ThemeLight:
		return "table-auto border border-gray-300"
	case types.ThemeDark:
		return "table-auto bg-gray-800 text-white border border-gray-600"
	case types.ThemeMaterial:
		return "table-auto border border-gray-200 shadow-md"
	case types.ThemeMinimal:
		return "table-fixed border-collapse border border-slate-300"
	default:
		return "table-auto"
	}
}

func rowClass(t types.Theme) string {
	switch t {
	case types.ThemeLight:
		return "bg-white"
	case types.ThemeDark:
		return "bg-gray-600"
	case types.ThemeMaterial:
		return "bg-gray-50"
	case types.ThemeMinimal:
		return ""
	default:
		return ""
	}
}

func bodyClass(t types.Theme) string {
	switch t {
	case types.ThemeLight:
		return "bg-gray-50 text-gray-950"
	case types.ThemeDark:
		return "bg-gray-700 text-white"
	case types.ThemeMaterial:
		return "bg-blue-50/10 text-gray-950"
	case types.ThemeMinimal:
		return ""
	default:
		return ""
	}
}
