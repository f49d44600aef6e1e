package template

import (
	"fmt"
	"strings"

	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/types"
)

func (pt *ProjectTemplate) nativeFiles(tables []types.Table) map[string]string {
	return map[string]string{
		"App.tsx":      pt.getNativeApp(tables),
		"package.json": pt.GetNativePackageJSON(),
	}
}

// getNativeApp declares every table unit at module level so one import block
// serves them all, then renders each under its title. Units keep the raw
// table name, so they are invoked as functions rather than JSX elements.
func (pt *ProjectTemplate) getNativeApp(tables []types.Table) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\nimport { ScrollView, Text, View } from 'react-native';\n\n")
	for _, table := range tables {
		b.WriteString(codegen.MobileUnit(table))
		b.WriteString("\n\n")
	}

	b.WriteString("export default function App() {\n  return (\n    <ScrollView style={{ padding: 16 }}>\n")
	b.WriteString("      <Text style={{ fontSize: 24, fontWeight: 'bold', marginBottom: 16 }}>" + pageHeading + "</Text>\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "      <Text style={{ fontWeight: 'bold', fontSize: 18, marginTop: 16 }}>%s</Text>\n", table.Name)
		// Units are module-level exports declared above; an export cannot sit
		// inside JSX. Raw names need not be valid tags, so call them.
		fmt.Fprintf(&b, "      {%s()}\n", table.Name)
	}
	b.WriteString("    </ScrollView>\n  );\n}\n")
	return b.String()
}

func (pt *ProjectTemplate) GetNativePackageJSON() string {
	return fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "main": "App.tsx",
  "dependencies": {
    "react": "^19.0.0",
    "react-native": "latest",
    "expo": "^50.0.0"
  },
  "devDependencies": {},
  "private": true
}
`, nativePackageName)
}
