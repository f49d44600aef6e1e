package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/nitrix/internal/database/mysql"
	"github.com/Rana718/nitrix/internal/database/postgres"
	"github.com/Rana718/nitrix/internal/database/sqlite"
	"github.com/Rana718/nitrix/internal/types"
)

var ErrUnsupportedProvider = errors.New("unsupported source provider")

// Providers lists the accepted source provider names.
var Providers = []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql", "file"}

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
}

// Load reads a full schema from source. The "file" provider parses a YAML or
// JSON document; every other provider connects to a database.
func Load(ctx context.Context, provider, source string) (*types.Schema, error) {
	if provider == "file" {
		return LoadFile(source)
	}

	adapter, err := NewAdapter(provider)
	if err != nil {
		return nil, err
	}
	if err := adapter.Connect(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to connect to %s source: %w", provider, err)
	}
	defer adapter.Close()

	if err := adapter.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s source: %w", provider, err)
	}
	return LoadSchema(ctx, adapter)
}

// LoadSchema reads every table of a connected adapter, in the adapter's table
// order.
func LoadSchema(ctx context.Context, adapter DatabaseAdapter) (*types.Schema, error) {
	names, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	schema := &types.Schema{Tables: make([]types.Table, 0, len(names))}
	for _, name := range names {
		columns, err := adapter.GetTableColumns(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", name, err)
		}
		if len(columns) == 0 {
			continue
		}

		rows, err := adapter.GetTableData(ctx, name, columns)
		if err != nil {
			return nil, fmt.Errorf("failed to get data for table %s: %w", name, err)
		}

		schema.Tables = append(schema.Tables, types.Table{
			Name:    name,
			Columns: columns,
			Rows:    rows,
		})
	}
	return schema, nil
}
