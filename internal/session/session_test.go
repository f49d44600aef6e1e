package session

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/nitrix/internal/archive"
	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
)

func testSchema() *types.Schema {
	return &types.Schema{Tables: []types.Table{
		{
			Name:    "users",
			Columns: []types.Column{{Name: "id", Type: "INTEGER"}, {Name: "name", Type: "TEXT"}},
			Rows:    []types.Row{{"id": 1, "name": "Ann"}},
		},
		{
			Name:    "order_items",
			Columns: []types.Column{{Name: "sku", Type: "TEXT"}},
			Rows:    []types.Row{{"sku": "A-1"}},
		},
	}}
}

func TestNewDefaults(t *testing.T) {
	s, err := New(testSchema())
	require.NoError(t, err)

	format, theme := s.Selection()
	assert.Equal(t, types.FormatReact, format)
	assert.Equal(t, types.ThemeLight, theme)
	assert.Equal(t, "react-code-nitrix.tsx", s.CodeFileName())
	assert.Equal(t, "react-light-nitrix-project.zip", s.ArchiveName())
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoSchema)

	_, err = New(testSchema(), WithFormat("svelte"))
	require.ErrorIs(t, err, types.ErrUnsupportedFormat)

	_, err = New(testSchema(), WithTheme("neon"))
	require.ErrorIs(t, err, types.ErrUnsupportedTheme)
}

func TestSelectionChangesDoNotTouchSchema(t *testing.T) {
	schema := testSchema()
	s, err := New(schema)
	require.NoError(t, err)

	require.NoError(t, s.SetFormat(types.FormatHTML))
	require.NoError(t, s.SetTheme(types.ThemeDark))
	require.ErrorIs(t, s.SetFormat("pdf"), types.ErrUnsupportedFormat)
	require.ErrorIs(t, s.SetTheme("neon"), types.ErrUnsupportedTheme)

	format, theme := s.Selection()
	assert.Equal(t, types.FormatHTML, format)
	assert.Equal(t, types.ThemeDark, theme)
	assert.Same(t, schema, s.Schema())
	assert.Equal(t, testSchema(), s.Schema())
	assert.Equal(t, "html-code-nitrix.html", s.CodeFileName())
	assert.Equal(t, "html-dark-nitrix-project.zip", s.ArchiveName())
}

func TestGenerateCodeMatchesGenerator(t *testing.T) {
	cache, err := gencommon.NewGenerationCache(4)
	require.NoError(t, err)

	s, err := New(testSchema(), WithFormat(types.FormatHTML), WithTheme(types.ThemeMaterial), WithCache(cache))
	require.NoError(t, err)

	want, err := codegen.GenerateAll(testSchema().Tables, types.FormatHTML, types.ThemeMaterial)
	require.NoError(t, err)

	got, err := s.GenerateCode()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, cache.Len())

	again, err := s.GenerateCode()
	require.NoError(t, err)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, s.SetTheme(types.ThemeMinimal))
	other, err := s.GenerateCode()
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
	assert.Equal(t, 2, cache.Len())
}

func TestBuildProject(t *testing.T) {
	s, err := New(testSchema())
	require.NoError(t, err)

	project, data, err := s.BuildProject()
	require.NoError(t, err)
	assert.Equal(t, types.FormatReact, project.Format)

	files, err := archive.Extract(data)
	require.NoError(t, err)
	assert.Equal(t, project.Files, files)
	assert.Contains(t, files, "src/components/UsersTable.tsx")
	assert.Contains(t, files, "src/components/OrderItemsTable.tsx")
	assert.Contains(t, files["src/App.tsx"], "import { OrderItemsTable } from './components/OrderItemsTable';")
}

func TestConcurrentSelection(t *testing.T) {
	s, err := New(testSchema())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			format := types.Formats[i%len(types.Formats)]
			theme := types.Themes[i%len(types.Themes)]
			assert.NoError(t, s.SetFormat(format))
			assert.NoError(t, s.SetTheme(theme))
			_, err := s.GenerateCode()
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
}

func TestSharedCacheDistinguishesLossyValues(t *testing.T) {
	cache, err := gencommon.NewGenerationCache(4)
	require.NoError(t, err)

	schemaWith := func(v any) *types.Schema {
		return &types.Schema{Tables: []types.Table{{
			Name:    "metrics",
			Columns: []types.Column{{Name: "v", Type: "REAL", Nullable: true}},
			Rows:    []types.Row{{"v": v}},
		}}}
	}

	nan, err := New(schemaWith(math.NaN()), WithFormat(types.FormatHTML), WithCache(cache))
	require.NoError(t, err)
	_, err = nan.GenerateCode()
	require.NoError(t, err)

	nullSchema := schemaWith(nil)
	null, err := New(nullSchema, WithFormat(types.FormatHTML), WithCache(cache))
	require.NoError(t, err)
	got, err := null.GenerateCode()
	require.NoError(t, err)

	want, err := codegen.GenerateAll(nullSchema.Tables, types.FormatHTML, types.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, got, "<td></td>")
	assert.Equal(t, 2, cache.Len())
}
