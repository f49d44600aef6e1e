package artifact

import (
	"context"
	"fmt"
	"time"
)

// Publish uploads an archive under a timestamped key and returns its URL.
func Publish(ctx context.Context, store Store, name string, data []byte, now time.Time) (string, error) {
	key := ObjectKey(name, now)
	if err := store.Put(ctx, key, data, ZipContentType); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	url, err := store.URL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve URL for %s: %w", name, err)
	}
	return url, nil
}
