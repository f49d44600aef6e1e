// Package archive packages a project file tree into zip bytes.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

var ErrPackaging = errors.New("failed to package archive")

// entryTime is stamped on every entry so identical inputs give identical bytes.
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Build zips files, keyed by slash-separated relative path. Either every file
// is written or an ErrPackaging error is returned with no bytes.
func Build(files map[string]string) ([]byte, error) {
	paths := make([]string, 0, len(files))
	for name := range files {
		if err := validatePath(name); err != nil {
			return nil, err
		}
		paths = append(paths, name)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range paths {
		if err := writeEntry(zw, name, files[name]); err != nil {
			zw.Close()
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPackaging, err)
	}
	return buf.Bytes(), nil
}

// BuildSingle zips one file.
func BuildSingle(name, content string) ([]byte, error) {
	return Build(map[string]string{name: content})
}

func writeEntry(zw *zip.Writer, name, content string) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: entryTime,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPackaging, name, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPackaging, name, err)
	}
	return nil
}

func validatePath(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty path", ErrPackaging)
	case strings.HasPrefix(name, "/") || strings.Contains(name, "\\"):
		return fmt.Errorf("%w: %q must be a relative slash-separated path", ErrPackaging, name)
	case path.Clean(name) != name || name == "." || strings.HasPrefix(name, "../") || name == "..":
		return fmt.Errorf("%w: %q is not a clean relative path", ErrPackaging, name)
	}
	return nil
}

// Extract reads every file entry of a zip back into a path -> content map.
func Extract(data []byte) (map[string]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		files[f.Name] = content
	}
	return files, nil
}

func readEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	return string(content), nil
}

// Entry describes one file inside an archive.
type Entry struct {
	Name           string
	Size           uint64
	CompressedSize uint64
}

func List(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		entries = append(entries, Entry{
			Name:           f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
		})
	}
	return entries, nil
}
