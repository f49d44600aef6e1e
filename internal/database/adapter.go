package database

import (
	"context"

	"github.com/Rana718/nitrix/internal/types"
)

// DatabaseAdapter reads tables, column definitions and rows out of a live
// database. Adapters never write.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// GetAllTableNames lists user tables in a stable order.
	GetAllTableNames(ctx context.Context) ([]string, error)
	GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error)
	// GetTableData returns every row keyed by column name, selecting columns
	// in the given order.
	GetTableData(ctx context.Context, tableName string, columns []types.Column) ([]types.Row, error)
}
