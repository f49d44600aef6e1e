package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/nitrix/internal/database/common"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
)

// Formats lists the accepted export formats; the first is the default.
var Formats = []string{"yaml", "json", "csv", "sqlite"}

// PerformExport writes schema below exportPath in the given format and
// returns the created file or directory. yaml, json and sqlite exports can be
// read back with the file and sqlite providers.
func PerformExport(ctx context.Context, schema *types.Schema, exportPath, format string, now time.Time) (string, error) {
	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	base := filepath.Join(exportPath, "export_"+now.Format("2006-01-02_15-04-05"))
	switch format {
	case "", "yaml":
		return exportToYAML(schema, base+".yaml")
	case "json":
		return exportToJSON(schema, base+".json")
	case "csv":
		return exportToCSV(schema, base+"_csv")
	case "sqlite":
		return exportToSQLite(ctx, schema, base+".db")
	default:
		return "", fmt.Errorf("unsupported export format: %s. Supported formats: %v", format, Formats)
	}
}

func exportToYAML(schema *types.Schema, filePath string) (string, error) {
	data, err := yaml.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

func exportToJSON(schema *types.Schema, filePath string) (string, error) {
	jsonData, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

// exportToCSV writes one file per table with columns in declared order.
// NULL becomes an empty field. Tables whose names sanitize alike get
// numbered file names.
func exportToCSV(schema *types.Schema, dirPath string) (string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create CSV directory: %w", err)
	}

	names := gencommon.UniqueNames(schema.TableNames())
	for i, table := range schema.Tables {
		if err := writeCSV(filepath.Join(dirPath, names[i]+".csv"), table); err != nil {
			return "", fmt.Errorf("failed to write CSV file for %s: %w", table.Name, err)
		}
	}
	return dirPath, nil
}

func writeCSV(filePath string, table types.Table) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	headers := table.ColumnNames()
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, row := range table.Rows {
		values := make([]string, len(headers))
		for i, header := range headers {
			values[i] = gencommon.CellText(row[header])
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func quote(name string) string {
	return common.QuoteIdent(name, `"`)
}

func exportToSQLite(ctx context.Context, schema *types.Schema, filePath string) (string, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer db.Close()

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).RunWith(db)
	for _, table := range schema.Tables {
		if len(table.Columns) == 0 {
			continue
		}

		if _, err := db.ExecContext(ctx, createTableSQL(table)); err != nil {
			return "", fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}

		columns := common.QuoteColumns(table.Columns, quote)
		for _, row := range table.Rows {
			values := make([]interface{}, len(table.Columns))
			for i, col := range table.Columns {
				values[i] = sqliteValue(row[col.Name])
			}
			if _, err := qb.Insert(quote(table.Name)).Columns(columns...).Values(values...).ExecContext(ctx); err != nil {
				return "", fmt.Errorf("failed to insert row into %s: %w", table.Name, err)
			}
		}
	}

	return filePath, nil
}

func createTableSQL(table types.Table) string {
	defs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		def := quote(col.Name)
		if col.Type != "" {
			def += " " + col.Type
		}
		if !col.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quote(table.Name), strings.Join(defs, ", "))
}

// sqliteValue maps values the driver cannot bind to their text form.
func sqliteValue(v any) any {
	switch v.(type) {
	case nil, string, []byte, bool, time.Time,
		int, int8, int16, int32, int64,
		uint8, uint16, uint32,
		float32, float64:
		return v
	}
	return gencommon.CellText(v)
}
