package template

import (
	"strings"

	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/theme"
	"github.com/Rana718/nitrix/internal/types"
)

func (pt *ProjectTemplate) htmlFiles(tables []types.Table) map[string]string {
	return map[string]string{
		"index.html": pt.GetHTMLDocument(tables),
	}
}

func (pt *ProjectTemplate) GetHTMLDocument(tables []types.Table) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Nitrix Generated Table</title>
  <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
</head>
<body class="`)
	b.WriteString(joinClasses("p-6 font-sans", theme.Resolve(theme.Body, pt.Theme)))
	b.WriteString("\">\n  <h1 class=\"text-2xl font-bold mb-4\">" + pageHeading + "</h1>\n")

	for _, table := range tables {
		// the format is fixed, so this cannot fail
		code, _ := codegen.Generate(table, types.FormatHTML, pt.Theme)
		b.WriteString("  <section class=\"mb-8\">\n")
		b.WriteString(code)
		b.WriteString("\n  </section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func joinClasses(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
