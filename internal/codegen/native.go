package codegen

import (
	"strings"

	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
)

const nativeImport = "import { View, Text, ScrollView } from 'react-native';"

func emitReactNative(table types.Table, headers []string, _ types.Theme) string {
	return nativeImport + "\n\n" + nativeUnit(table, headers)
}

// MobileUnit renders the React Native component for table without its import
// line. The export keeps the raw table name, unlike the React format.
func MobileUnit(table types.Table) string {
	return nativeUnit(table, table.ColumnNames())
}

func nativeUnit(table types.Table, headers []string) string {
	return gencommon.Build(func(b *strings.Builder) {
		b.WriteString("export const ")
		b.WriteString(table.Name)
		b.WriteString(" = () => {\n  const data = ")
		b.WriteString(gencommon.Snapshot(table.Rows, headers))
		b.WriteString(";\n  return (\n    <ScrollView>\n      <Text style={{ fontWeight: 'bold', fontSize: 18 }}>")
		b.WriteString(table.Name)
		b.WriteString("</Text>\n      {data.map((row, i) => (\n        <View key={i} style={{ marginVertical: 10, padding: 10, borderBottomWidth: 1 }}>\n          ")
		for i, h := range headers {
			if i > 0 {
				b.WriteString("\n          ")
			}
			b.WriteString("<Text><Text style={{ fontWeight: 'bold' }}>")
			b.WriteString(h)
			b.WriteString(":</Text> {row[")
			b.WriteString(gencommon.QuoteKey(h))
			b.WriteString("]}</Text>")
		}
		b.WriteString("\n        </View>\n      ))}\n    </ScrollView>\n  );\n};")
	})
}
