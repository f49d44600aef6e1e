package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rana718/nitrix/internal/types"
)

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "abc", NormalizeValue([]byte("abc")))
	assert.Equal(t, []byte{0xff, 0xfe}, NormalizeValue([]byte{0xff, 0xfe}))
	assert.Equal(t, int64(4), NormalizeValue(int64(4)))
	assert.Nil(t, NormalizeValue(nil))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"users"`, QuoteIdent("users", `"`))
	assert.Equal(t, `"a""b"`, QuoteIdent(`a"b`, `"`))
	assert.Equal(t, "`a``b`", QuoteIdent("a`b", "`"))
}

func TestQuoteColumns(t *testing.T) {
	cols := []types.Column{{Name: "id"}, {Name: "full name"}}
	quote := func(s string) string { return QuoteIdent(s, `"`) }
	assert.Equal(t, []string{`"id"`, `"full name"`}, QuoteColumns(cols, quote))
}
