package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedTheme  = errors.New("unsupported theme")
)

type Format string

const (
	FormatHTML        Format = "html"
	FormatReact       Format = "react"
	FormatReactNative Format = "react-native"
)

type Theme string

const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeMaterial Theme = "material"
	ThemeMinimal  Theme = "minimal"
)

var (
	Formats = []Format{FormatHTML, FormatReact, FormatReactNative}
	Themes  = []Theme{ThemeLight, ThemeDark, ThemeMaterial, ThemeMinimal}
)

type Schema struct {
	Tables []Table `json:"tables" yaml:"tables"`
}

type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

type Column struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// Row maps a column name to a scalar: nil, string, a numeric kind, bool,
// time.Time or []byte.
type Row map[string]any

// ColumnNames returns the column names of t in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

func (s *Schema) TableNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.Name
	}
	return names
}

func (f Format) Valid() bool {
	switch f {
	case FormatHTML, FormatReact, FormatReactNative:
		return true
	}
	return false
}

// Extension is the file extension used when the generated code is saved.
func (f Format) Extension() string {
	if f == FormatHTML {
		return "html"
	}
	return "tsx"
}

func (f Format) Label() string {
	switch f {
	case FormatHTML:
		return "HTML"
	case FormatReact:
		return "React (Vite)"
	case FormatReactNative:
		return "React Native (Expo)"
	default:
		return string(f)
	}
}

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeMaterial, ThemeMinimal:
		return true
	}
	return false
}

// ParseFormat accepts the format names plus the markup/component/mobile aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "markup":
		return FormatHTML, nil
	case "react", "component", "tsx":
		return FormatReact, nil
	case "react-native", "mobile-component", "mobile", "rn":
		return FormatReactNative, nil
	}
	return "", fmt.Errorf("%w: %q (supported: html, react, react-native)", ErrUnsupportedFormat, s)
}

func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (supported: light, dark, material, minimal)", ErrUnsupportedTheme, s)
}
