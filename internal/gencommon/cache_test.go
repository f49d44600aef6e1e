package gencommon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/nitrix/internal/types"
)

func sampleSchema() *types.Schema {
	return &types.Schema{Tables: []types.Table{{
		Name:    "users",
		Columns: []types.Column{{Name: "id", Type: "INTEGER"}, {Name: "name", Type: "TEXT", Nullable: true}},
		Rows:    []types.Row{{"id": 1, "name": "Ada"}},
	}}}
}

func TestComputeSchemaChecksum(t *testing.T) {
	a := ComputeSchemaChecksum(sampleSchema())
	b := ComputeSchemaChecksum(sampleSchema())
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	changed := sampleSchema()
	changed.Tables[0].Rows[0]["name"] = "Grace"
	assert.NotEqual(t, a, ComputeSchemaChecksum(changed))

	nullable := sampleSchema()
	nullable.Tables[0].Columns[0].Nullable = true
	assert.NotEqual(t, a, ComputeSchemaChecksum(nullable))
}

func TestGenerationCache(t *testing.T) {
	cache, err := NewGenerationCache(2)
	require.NoError(t, err)

	sum := ComputeSchemaChecksum(sampleSchema())
	light := Key(sum, types.FormatHTML, types.ThemeLight)
	dark := Key(sum, types.FormatHTML, types.ThemeDark)
	react := Key(sum, types.FormatReact, types.ThemeDark)

	_, ok := cache.Get(light)
	assert.False(t, ok)

	cache.Put(light, "light code")
	cache.Put(dark, "dark code")
	got, ok := cache.Get(light)
	require.True(t, ok)
	assert.Equal(t, "light code", got)

	cache.Put(react, "react code")
	assert.Equal(t, 2, cache.Len())
	_, ok = cache.Get(dark)
	assert.False(t, ok, "least recently used entry should be evicted")

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestGenerationCacheNil(t *testing.T) {
	var cache *GenerationCache
	cache.Put("k", "v")
	_, ok := cache.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestComputeSchemaChecksumKeepsTypes(t *testing.T) {
	withValue := func(v any) *types.Schema {
		return &types.Schema{Tables: []types.Table{{
			Name:    "blobs",
			Columns: []types.Column{{Name: "v", Type: "BLOB", Nullable: true}},
			Rows:    []types.Row{{"v": v}},
		}}}
	}

	assert.NotEqual(t, ComputeSchemaChecksum(withValue(math.NaN())), ComputeSchemaChecksum(withValue(nil)))
	assert.NotEqual(t, ComputeSchemaChecksum(withValue(math.Inf(1))), ComputeSchemaChecksum(withValue(nil)))
	assert.NotEqual(t, ComputeSchemaChecksum(withValue([]byte{0xff, 0xfe})), ComputeSchemaChecksum(withValue("//4=")))
	assert.NotEqual(t, ComputeSchemaChecksum(withValue(int64(1))), ComputeSchemaChecksum(withValue("1")))

	missing := withValue(nil)
	missing.Tables[0].Rows[0] = types.Row{}
	assert.NotEqual(t, ComputeSchemaChecksum(missing), ComputeSchemaChecksum(withValue(nil)))
}
