package artifact

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const ZipContentType = "application/zip"

// Store publishes generated archives and hands back a location for them.
type Store interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	URL(ctx context.Context, key string) (string, error)
}

// ObjectKey prefixes name with a UTC timestamp so repeated uploads of the same
// format/theme pair do not overwrite each other.
func ObjectKey(name string, now time.Time) string {
	return now.UTC().Format("20060102T150405Z") + "/" + strings.TrimLeft(strings.TrimSpace(name), "/")
}

func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	if cleaned := path.Clean(key); cleaned != key || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return key, nil
}

// DirStore writes artifacts below a local directory.
type DirStore struct {
	root string
}

func NewDirStore(root string) (*DirStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("artifact directory is required")
	}
	return &DirStore{root: root}, nil
}

func (d *DirStore) Put(ctx context.Context, key string, content []byte, contentType string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	dest := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

func (d *DirStore) URL(ctx context.Context, key string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(d.root, filepath.FromSlash(key)))
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}
