package mysql

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/nitrix/internal/database/common"
	"github.com/Rana718/nitrix/internal/types"
)

func quote(name string) string {
	return common.QuoteIdent(name, "`")
}

func (m *Adapter) tableNamesQuery() squirrel.SelectBuilder {
	return m.qb.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name")
}

func (m *Adapter) columnsQuery(tableName string) squirrel.SelectBuilder {
	return m.qb.Select("column_name", "column_type", "is_nullable").
		From("information_schema.columns").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_name": tableName}).
		OrderBy("ordinal_position")
}

func (m *Adapter) tableDataQuery(tableName string, columns []types.Column) squirrel.SelectBuilder {
	return m.qb.Select(common.QuoteColumns(columns, quote)...).
		From(quote(tableName))
}

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := m.tableNamesQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (m *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	query, args, err := m.columnsQuery(tableName).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var name, columnType, nullable string
		if err := rows.Scan(&name, &columnType, &nullable); err != nil {
			return nil, err
		}
		columns = append(columns, types.Column{
			Name:     name,
			Type:     columnType,
			Nullable: nullable == "YES",
		})
	}
	return columns, rows.Err()
}

func (m *Adapter) GetTableData(ctx context.Context, tableName string, columns []types.Column) ([]types.Row, error) {
	query, args, err := m.tableDataQuery(tableName, columns).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return common.ScanRows(rows)
}
