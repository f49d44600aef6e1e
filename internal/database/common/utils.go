package common

import (
	"database/sql"
	"strings"
	"unicode/utf8"

	"github.com/Rana718/nitrix/internal/types"
)

// ScanRows drains rows into column-keyed maps. Text returned as []byte is
// converted to string; binary data is kept as bytes.
func ScanRows(rows *sql.Rows) ([]types.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]types.Row, 0, 16)
	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(types.Row, len(columns))
		for i, col := range columns {
			row[col] = NormalizeValue(values[i])
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func NormalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		if utf8.Valid(b) {
			return string(b)
		}
		return append([]byte(nil), b...)
	}
	return v
}

// QuoteIdent wraps an identifier in quote, doubling any embedded quote.
func QuoteIdent(name, quote string) string {
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}

// QuoteColumns quotes every column name with quote.
func QuoteColumns(columns []types.Column, quote func(string) string) []string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quote(col.Name)
	}
	return quoted
}
