package template

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
)

func sampleTables() []types.Table {
	return []types.Table{
		{
			Name:    "users",
			Columns: []types.Column{{Name: "id", Type: "INTEGER"}, {Name: "email", Type: "TEXT", Nullable: true}},
			Rows:    []types.Row{{"id": 1, "email": nil}},
		},
		{
			Name:    "Customer Orders",
			Columns: []types.Column{{Name: "order_id", Type: "INTEGER"}},
			Rows:    []types.Row{{"order_id": 10}, {"order_id": 11}},
		},
	}
}

var importRegex = regexp.MustCompile(`import \{ (\w+) \} from './components/(\w+)';`)

func TestAssembleReactComponentFilesMatchImports(t *testing.T) {
	tables := sampleTables()
	project, err := NewProjectTemplate(types.FormatReact, types.ThemeLight).Assemble(tables)
	require.NoError(t, err)

	want := []string{gencommon.Sanitize(tables[0].Name), gencommon.Sanitize(tables[1].Name)}

	var componentFiles []string
	for path := range project.Files {
		if strings.HasPrefix(path, componentsDir+"/") {
			componentFiles = append(componentFiles, strings.TrimSuffix(strings.TrimPrefix(path, componentsDir+"/"), ".tsx"))
		}
	}
	sort.Strings(componentFiles)
	expected := append([]string(nil), want...)
	sort.Strings(expected)
	assert.Equal(t, expected, componentFiles)

	app := project.Files["src/App.tsx"]
	matches := importRegex.FindAllStringSubmatch(app, -1)
	require.Len(t, matches, len(tables))
	for i, m := range matches {
		assert.Equal(t, want[i], m[1], "imported identifier")
		assert.Equal(t, want[i], m[2], "imported module")
		assert.Contains(t, project.Files[ComponentPath(m[1])], "export const "+m[1]+" = () => {")
	}

	// rendered in input order
	first := strings.Index(app, "<"+want[0]+" />")
	second := strings.Index(app, "<"+want[1]+" />")
	assert.True(t, first > 0 && second > first)
}

func TestAssembleReactSkeleton(t *testing.T) {
	project, err := NewProjectTemplate(types.FormatReact, types.ThemeDark).Assemble(sampleTables())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"index.html",
		"package.json",
		"postcss.config.js",
		"src/App.tsx",
		"src/components/CustomerOrdersTable.tsx",
		"src/components/UsersTable.tsx",
		"src/index.css",
		"src/main.tsx",
		"tailwind.config.js",
		"vite.config.ts",
	}, project.Paths())

	assert.Contains(t, project.Files["src/App.tsx"], `<main className="p-6 font-sans bg-gray-700 text-white">`)
	assert.Contains(t, project.Files["package.json"], `"name": "nitrix-react-app"`)
	assert.Contains(t, project.Files["index.html"], `src="/src/main.tsx"`)
	assert.Equal(t, "src/App.tsx", project.EntryFile())

	component := project.Files["src/components/UsersTable.tsx"]
	assert.Contains(t, component, `"email": null`)
	assert.Contains(t, component, `className="bg-gray-600"`)

	_, _, ok := project.SingleFile()
	assert.False(t, ok)
}

func TestAssembleReactCollidingNames(t *testing.T) {
	tables := []types.Table{{Name: "a b"}, {Name: "a_b"}}
	project, err := NewProjectTemplate(types.FormatReact, types.ThemeLight).Assemble(tables)
	require.NoError(t, err)

	app := project.Files["src/App.tsx"]
	for _, name := range []string{"ABTable", "ABTable2"} {
		assert.Contains(t, project.Files, ComponentPath(name))
		assert.Contains(t, app, "import { "+name+" } from './components/"+name+"';")
		assert.Contains(t, app, "<"+name+" />")
	}
}

func TestAssembleReactNoTables(t *testing.T) {
	project, err := NewProjectTemplate(types.FormatReact, types.ThemeMinimal).Assemble(nil)
	require.NoError(t, err)
	app := project.Files["src/App.tsx"]
	assert.True(t, strings.HasPrefix(app, "export default function App() {"))
	assert.Contains(t, app, `<main className="p-6 font-sans">`)
}

func TestAssembleHTML(t *testing.T) {
	tables := sampleTables()
	project, err := NewProjectTemplate(types.FormatHTML, types.ThemeMaterial).Assemble(tables)
	require.NoError(t, err)
	require.Equal(t, []string{"index.html"}, project.Paths())

	doc := project.Files["index.html"]
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<body class="p-6 font-sans bg-blue-50/10 text-gray-950">`)
	assert.Equal(t, len(tables), strings.Count(doc, `<section class="mb-8">`))

	last := -1
	for _, table := range tables {
		code, err := codegen.Generate(table, types.FormatHTML, types.ThemeMaterial)
		require.NoError(t, err)
		idx := strings.Index(doc, code)
		assert.Greater(t, idx, last, "table %q missing or out of order", table.Name)
		last = idx
	}

	name, content, ok := project.SingleFile()
	require.True(t, ok)
	assert.Equal(t, "index.html", name)
	assert.Equal(t, doc, content)
}

func TestAssembleReactNative(t *testing.T) {
	tables := sampleTables()
	project, err := NewProjectTemplate(types.FormatReactNative, types.ThemeLight).Assemble(tables)
	require.NoError(t, err)
	assert.Equal(t, []string{"App.tsx", "package.json"}, project.Paths())

	app := project.Files["App.tsx"]
	assert.Equal(t, 1, strings.Count(app, "from 'react-native';"))
	assert.Contains(t, app, "Generated Table Views")

	last := -1
	for _, table := range tables {
		unit := codegen.MobileUnit(table)
		assert.Contains(t, app, unit)
		title := "marginTop: 16 }}>" + table.Name + "</Text>\n      {" + table.Name + "()}"
		idx := strings.Index(app, title)
		assert.Greater(t, idx, last, "table %q missing or out of order", table.Name)
		last = idx
	}

	body := app[strings.Index(app, "export default function App()"):]
	assert.NotContains(t, body, "export const", "units must be declared before App, not inside its JSX")
	assert.NotContains(t, body, "import ")

	assert.Contains(t, project.Files["package.json"], `"react-native": "latest"`)
	assert.Contains(t, project.Files["package.json"], `"expo": "^50.0.0"`)
}

func TestAssembleUnsupportedFormat(t *testing.T) {
	project, err := NewProjectTemplate("vue", types.ThemeLight).Assemble(sampleTables())
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
	assert.Nil(t, project)
}
