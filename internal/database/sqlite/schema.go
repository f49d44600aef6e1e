package sqlite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/nitrix/internal/database/common"
	"github.com/Rana718/nitrix/internal/types"
)

func quote(name string) string {
	return common.QuoteIdent(name, `"`)
}

func (s *Adapter) tableNamesQuery() squirrel.SelectBuilder {
	return s.qb.Select("name").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table"}).
		Where(squirrel.NotLike{"name": "sqlite_%"}).
		OrderBy("rowid")
}

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := s.tableNamesQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

func (s *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quote(tableName)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var (
			cid        int
			name       string
			dataType   string
			notNull    int
			defaultVal interface{}
			pk         int
		)
		if err := rows.Scan(&cid, &name, &dataType, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, types.Column{
			Name:     name,
			Type:     dataType,
			Nullable: notNull == 0 && pk == 0,
		})
	}
	return columns, rows.Err()
}

func (s *Adapter) tableDataQuery(tableName string, columns []types.Column) squirrel.SelectBuilder {
	return s.qb.Select(common.QuoteColumns(columns, quote)...).
		From(quote(tableName))
}

func (s *Adapter) GetTableData(ctx context.Context, tableName string, columns []types.Column) ([]types.Row, error) {
	query, args, err := s.tableDataQuery(tableName, columns).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return common.ScanRows(rows)
}
