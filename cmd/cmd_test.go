package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/nitrix/internal/archive"
	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/insights"
	"github.com/Rana718/nitrix/internal/types"
)

const schemaYAML = `
tables:
  - name: users
    columns:
      - {name: id, type: INTEGER}
      - {name: email, type: TEXT, nullable: true}
    rows:
      - {id: 1, email: ann@example.com}
      - {id: 2, email: null}
  - name: order_items
    columns:
      - {name: sku, type: TEXT}
    rows:
      - {sku: A-1}
`

func testConfig(t *testing.T, format, theme string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaYAML), 0644))

	cfg := config.DefaultConfig()
	cfg.Format = format
	cfg.Theme = theme
	cfg.OutDir = filepath.Join(dir, "out")
	cfg.Source.Provider = "file"
	cfg.Source.Path = schemaPath
	cfg.Artifact.Dir = filepath.Join(dir, "artifacts")
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunGenerateWritesCodeFile(t *testing.T) {
	cfg := testConfig(t, "html", "dark")
	ctx := context.Background()

	require.NoError(t, runGenerate(ctx, &bytes.Buffer{}, cfg, generateOptions{}))

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, "html-code-nitrix.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h2>users</h2>")
	assert.Contains(t, string(data), "order_items")

	err = runGenerate(ctx, &bytes.Buffer{}, cfg, generateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, runGenerate(ctx, &bytes.Buffer{}, cfg, generateOptions{force: true}))
}

func TestRunGenerateStdout(t *testing.T) {
	cfg := testConfig(t, "react-native", "light")

	var buf bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), &buf, cfg, generateOptions{stdout: true}))
	assert.Contains(t, buf.String(), "import { View, Text, ScrollView } from 'react-native';")
	assert.NoFileExists(t, filepath.Join(cfg.OutDir, "react-native-code-nitrix.tsx"))
}

func TestRunProjectArchive(t *testing.T) {
	cfg := testConfig(t, "react", "material")

	require.NoError(t, runProject(context.Background(), cfg, projectOptions{upload: true}))

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, "react-material-nitrix-project.zip"))
	require.NoError(t, err)

	files, err := archive.Extract(data)
	require.NoError(t, err)
	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, "src/components/UsersTable.tsx")
	assert.Contains(t, files, "src/components/OrderItemsTable.tsx")

	uploaded, err := filepath.Glob(filepath.Join(cfg.Artifact.Dir, "*", "react-material-nitrix-project.zip"))
	require.NoError(t, err)
	assert.Len(t, uploaded, 1)
}

func TestRunProjectSingle(t *testing.T) {
	cfg := testConfig(t, "html", "minimal")
	require.NoError(t, runProject(context.Background(), cfg, projectOptions{single: true}))
	assert.FileExists(t, filepath.Join(cfg.OutDir, "index.html"))

	cfg = testConfig(t, "react", "light")
	err := runProject(context.Background(), cfg, projectOptions{single: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--single")
}

func TestRunPreview(t *testing.T) {
	cfg := testConfig(t, "html", "light")

	var buf bytes.Buffer
	require.NoError(t, runPreview(context.Background(), &buf, cfg, []string{"users"}, 5))
	assert.Contains(t, buf.String(), "ann@example.com")
	assert.Contains(t, buf.String(), "NULL")
	assert.NotContains(t, buf.String(), "A-1")

	err := runPreview(context.Background(), &buf, cfg, []string{"missing"}, 5)
	require.Error(t, err)
}

func TestRunInsightsJSON(t *testing.T) {
	cfg := testConfig(t, "html", "light")

	var buf bytes.Buffer
	require.NoError(t, runInsights(context.Background(), &buf, cfg, nil, true))

	var got []insights.TableAnalysis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "users", got[0].Name)
	assert.Equal(t, 2, got[0].RowCount)
	assert.InDelta(t, 0.5, got[0].Columns[1].NullPercentage, 1e-9)
}

func TestRunInspect(t *testing.T) {
	data, err := archive.Build(map[string]string{"index.html": "<html></html>", "src/App.tsx": "x"})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "p.zip")
	require.NoError(t, os.WriteFile(path, data, 0644))

	var buf bytes.Buffer
	require.NoError(t, runInspect(&buf, path, ""))
	assert.Contains(t, buf.String(), "index.html")
	assert.Contains(t, buf.String(), "src/App.tsx")
	assert.Contains(t, buf.String(), "2 files")

	buf.Reset()
	require.NoError(t, runInspect(&buf, path, "index.html"))
	assert.Equal(t, "<html></html>", buf.String())

	require.Error(t, runInspect(&buf, path, "nope"))
}

func TestSelectTablesKeepsSchemaOrder(t *testing.T) {
	schema := &types.Schema{Tables: []types.Table{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	got, err := selectTables(schema, []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, (&types.Schema{Tables: got}).TableNames())

	all, err := selectTables(schema, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInitializeProject(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, initializeProject("postgresql", false))
	assert.FileExists(t, config.FileName)

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(env), "DATABASE_URL=postgres://"))

	require.Error(t, initializeProject("postgresql", false))
	require.NoError(t, initializeProject("sqlite", true))
}

func TestHandleEnvFileAppends(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(".env", []byte("OTHER=1"), 0644))
	require.NoError(t, handleEnvFile("DATABASE_URL", "DATABASE_URL=mysql://root@localhost/app\n"))

	env, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "OTHER=1\n\n# Added by Nitrix\nDATABASE_URL=mysql://root@localhost/app\n", string(env))

	require.NoError(t, handleEnvFile("DATABASE_URL", "DATABASE_URL=other\n"))
	again, err := os.ReadFile(".env")
	require.NoError(t, err)
	assert.Equal(t, env, again)
}

func TestRunExportSQLite(t *testing.T) {
	cfg := testConfig(t, "html", "light")

	require.NoError(t, runExport(context.Background(), cfg, "", "sqlite"))

	matches, err := filepath.Glob(filepath.Join(cfg.OutDir, "export_*.db"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	cfg.Source.Provider = "sqlite"
	cfg.Source.Path = matches[0]
	var buf bytes.Buffer
	require.NoError(t, runPreview(context.Background(), &buf, cfg, nil, 5))
	assert.Contains(t, buf.String(), "ann@example.com")
}

func TestNewSessionReusesProcessCache(t *testing.T) {
	cfg := testConfig(t, "html", "dark")
	schema, err := loadSchema(context.Background(), cfg)
	require.NoError(t, err)

	cache, err := generationCache(cfg.Cache.Size)
	require.NoError(t, err)
	cache.Clear()

	first, err := newSession(cfg, schema)
	require.NoError(t, err)
	want, err := first.GenerateCode()
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := newSession(cfg, schema)
	require.NoError(t, err)
	got, err := second.GenerateCode()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, cache.Len(), "second session should hit the shared cache")
}
