package postgres

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lib/pq"

	"github.com/Rana718/nitrix/internal/database/common"
	"github.com/Rana718/nitrix/internal/types"
)

func (p *Adapter) tableNamesQuery() squirrel.SelectBuilder {
	return p.qb.Select("table_name").
		From("information_schema.tables").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name")
}

func (p *Adapter) columnsQuery(tableName string) squirrel.SelectBuilder {
	return p.qb.Select("column_name", "data_type", "is_nullable").
		From("information_schema.columns").
		Where("table_schema = current_schema()").
		Where(squirrel.Eq{"table_name": tableName}).
		OrderBy("ordinal_position")
}

func (p *Adapter) tableDataQuery(tableName string, columns []types.Column) squirrel.SelectBuilder {
	return p.qb.Select(common.QuoteColumns(columns, pq.QuoteIdentifier)...).
		From(pq.QuoteIdentifier(tableName))
}

func (p *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := p.tableNamesQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
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

func (p *Adapter) GetTableColumns(ctx context.Context, tableName string) ([]types.Column, error) {
	query, args, err := p.columnsQuery(tableName).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var name, dataType, nullable string
		if err := rows.Scan(&name, &dataType, &nullable); err != nil {
			return nil, err
		}
		columns = append(columns, types.Column{
			Name:     name,
			Type:     dataType,
			Nullable: nullable == "YES",
		})
	}
	return columns, rows.Err()
}

func (p *Adapter) GetTableData(ctx context.Context, tableName string, columns []types.Column) ([]types.Row, error) {
	query, args, err := p.tableDataQuery(tableName, columns).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var result []types.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(types.Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = normalize(values[i])
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// normalize reduces pgx's decoded values to the scalar kinds rows carry.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case [16]byte:
		return fmt.Sprintf("%x-%x-%x-%x-%x", val[0:4], val[4:6], val[6:8], val[8:10], val[10:16])
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		return string(b)
	case driver.Valuer:
		out, err := val.Value()
		if err != nil {
			return nil
		}
		return common.NormalizeValue(out)
	}
	return common.NormalizeValue(v)
}
