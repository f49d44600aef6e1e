package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Rana718/nitrix/internal/archive"
	"github.com/Rana718/nitrix/internal/codegen"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/types"
	"github.com/Rana718/nitrix/template"
)

const (
	DefaultFormat = types.FormatReact
	DefaultTheme  = types.ThemeLight
)

var ErrNoSchema = errors.New("no schema loaded")

// Session holds one loaded schema together with the current format and theme
// selection. The schema never changes after New; the selection may change at
// any time and only takes effect on the next explicit generate or build call.
type Session struct {
	mu       sync.RWMutex
	schema   *types.Schema
	checksum string
	format   types.Format
	theme    types.Theme
	cache    *gencommon.GenerationCache
}

type Option func(*Session)

func WithFormat(f types.Format) Option {
	return func(s *Session) { s.format = f }
}

func WithTheme(t types.Theme) Option {
	return func(s *Session) { s.theme = t }
}

// WithCache shares a generation cache between sessions. Without it each
// session gets its own cache of gencommon.DefaultCacheSize entries.
func WithCache(c *gencommon.GenerationCache) Option {
	return func(s *Session) { s.cache = c }
}

func New(schema *types.Schema, opts ...Option) (*Session, error) {
	if schema == nil {
		return nil, ErrNoSchema
	}

	s := &Session{
		schema: schema,
		format: DefaultFormat,
		theme:  DefaultTheme,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.format.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, s.format)
	}
	if !s.theme.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedTheme, s.theme)
	}
	if s.cache == nil {
		cache, err := gencommon.NewGenerationCache(gencommon.DefaultCacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}

	s.checksum = gencommon.ComputeSchemaChecksum(schema)
	return s, nil
}

func (s *Session) Schema() *types.Schema {
	return s.schema
}

func (s *Session) SetFormat(f types.Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, f)
	}
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
	return nil
}

func (s *Session) SetTheme(t types.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnsupportedTheme, t)
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

func (s *Session) Selection() (types.Format, types.Theme) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format, s.theme
}

// GenerateCode renders every table for the current selection.
func (s *Session) GenerateCode() (string, error) {
	format, theme := s.Selection()

	key := gencommon.Key(s.checksum, format, theme)
	if code, ok := s.cache.Get(key); ok {
		return code, nil
	}

	code, err := codegen.GenerateAll(s.schema.Tables, format, theme)
	if err != nil {
		return "", err
	}
	s.cache.Put(key, code)
	return code, nil
}

// BuildProject assembles the project for the current selection and packs it.
func (s *Session) BuildProject() (*template.Project, []byte, error) {
	format, theme := s.Selection()

	project, err := template.NewProjectTemplate(format, theme).Assemble(s.schema.Tables)
	if err != nil {
		return nil, nil, err
	}
	data, err := archive.Build(project.Files)
	if err != nil {
		return nil, nil, err
	}
	return project, data, nil
}

func (s *Session) CodeFileName() string {
	format, _ := s.Selection()
	return codegen.CodeFileName(format)
}

func (s *Session) ArchiveName() string {
	format, theme := s.Selection()
	return codegen.ArchiveName(format, theme)
}
