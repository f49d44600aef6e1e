package gencommon

import (
	"crypto/sha256"
	"fmt"
	"io"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Rana718/nitrix/internal/types"
)

const DefaultCacheSize = 32

// GenerationCache memoizes generated code by schema checksum, format and
// theme. Generation is pure, so a hit is always equal to a fresh run.
type GenerationCache struct {
	entries *lru.Cache[string, string]
}

func NewGenerationCache(size int) (*GenerationCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation cache: %w", err)
	}
	return &GenerationCache{entries: entries}, nil
}

// ComputeSchemaChecksum hashes table names, column definitions and every row
// cell with its dynamic type, in order.
func ComputeSchemaChecksum(schema *types.Schema) string {
	hash := sha256.New()
	if schema != nil {
		for _, table := range schema.Tables {
			writeTable(hash, table)
		}
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}

func writeTable(w io.Writer, table types.Table) {
	fmt.Fprintf(w, "table:%s\x00", strconv.Quote(table.Name))
	for _, col := range table.Columns {
		fmt.Fprintf(w, "col:%s:%s:%t\x00", strconv.Quote(col.Name), strconv.Quote(col.Type), col.Nullable)
	}
	columns := table.ColumnNames()
	for _, row := range table.Rows {
		io.WriteString(w, "row\x00")
		writeRow(w, row, columns)
	}
}

// writeRow fingerprints cells by Go type and value rather than through the
// JSON snapshot, which folds NaN into null and bytes into base64.
func writeRow(w io.Writer, row types.Row, columns []string) {
	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		known[col] = struct{}{}
		v, ok := row[col]
		if !ok {
			fmt.Fprintf(w, "%s~absent\x00", strconv.Quote(col))
			continue
		}
		writeCell(w, col, v)
	}

	var extra []string
	for key := range row {
		if _, ok := known[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		writeCell(w, key, row[key])
	}
}

func writeCell(w io.Writer, key string, v any) {
	fmt.Fprintf(w, "%s=%T:%#v\x00", strconv.Quote(key), v, v)
}

// Key combines a schema checksum with the selection it was generated for.
func Key(schemaChecksum string, format types.Format, theme types.Theme) string {
	return schemaChecksum + "|" + string(format) + "|" + string(theme)
}

func (c *GenerationCache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.entries.Get(key)
}

func (c *GenerationCache) Put(key, code string) {
	if c == nil {
		return
	}
	c.entries.Add(key, code)
}

func (c *GenerationCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Clear removes all cache data
func (c *GenerationCache) Clear() {
	if c == nil {
		return
	}
	c.entries.Purge()
}
