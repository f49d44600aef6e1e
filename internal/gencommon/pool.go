package gencommon

import (
	"strings"
	"sync"
)

// StringBuilderPool provides pooled strings.Builder instances shared by the
// per-format emitters.
var StringBuilderPool = sync.Pool{
	New: func() interface{} {
		b := new(strings.Builder)
		b.Grow(4096)
		return b
	},
}

// GetBuilder retrieves a builder from the pool
func GetBuilder() *strings.Builder {
	return StringBuilderPool.Get().(*strings.Builder)
}

// PutBuilder returns a builder to the pool after resetting it
func PutBuilder(b *strings.Builder) {
	b.Reset()
	StringBuilderPool.Put(b)
}

// Build runs fn against a pooled builder and returns the accumulated text.
func Build(fn func(b *strings.Builder)) string {
	b := GetBuilder()
	defer PutBuilder(b)
	fn(b)
	return b.String()
}
