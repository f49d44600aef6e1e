package gencommon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/Rana718/nitrix/internal/types"
)

// isoMillis matches the ISO-8601 form JavaScript uses when serializing dates.
const isoMillis = "2006-01-02T15:04:05.000Z"

// QuoteKey returns name as a JSON string literal. Snapshot keys and the row
// accessors of generated components both go through it so they always agree.
func QuoteKey(name string) string {
	return string(marshalScalar(name))
}

// Snapshot renders rows as a two-space indented JSON array. Object keys follow
// columns; keys a row carries outside of columns come after them, sorted.
// Keys absent from a row are omitted, nil values are emitted as null.
func Snapshot(rows []types.Row, columns []string) string {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		writeObject(&compact, row, columns)
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		// every fragment comes from the json encoder, so this is unreachable
		return compact.String()
	}
	return out.String()
}

func writeObject(buf *bytes.Buffer, row types.Row, columns []string) {
	buf.WriteByte('{')
	n := 0
	write := func(key string, v any) {
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(marshalScalar(key))
		buf.WriteByte(':')
		buf.Write(marshalScalar(v))
		n++
	}

	known := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		known[col] = struct{}{}
		if v, ok := row[col]; ok {
			write(col, v)
		}
	}

	if len(row) > n {
		extra := make([]string, 0, len(row)-n)
		for key := range row {
			if _, ok := known[key]; !ok {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			write(key, row[key])
		}
	}
	buf.WriteByte('}')
}

// marshalScalar encodes one value without HTML escaping. Values JSON cannot
// represent (NaN, infinities, unsupported kinds) degrade to null.
func marshalScalar(v any) []byte {
	switch x := v.(type) {
	case nil:
		return []byte("null")
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return []byte("null")
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return []byte("null")
		}
	case time.Time:
		v = x.UTC().Format(isoMillis)
	case []byte:
		if utf8.Valid(x) {
			v = string(x)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return []byte("null")
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// CellText renders a value as plain text for markup output; nil is "".
func CellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
