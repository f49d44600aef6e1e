package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"

	"github.com/Rana718/nitrix/internal/config"
	"github.com/Rana718/nitrix/internal/database"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/session"
	"github.com/Rana718/nitrix/internal/types"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadSchema(ctx context.Context, cfg *config.Config) (*types.Schema, error) {
	location, err := cfg.SourceLocation()
	if err != nil {
		return nil, err
	}

	schema, err := database.Load(ctx, cfg.Source.Provider, location)
	if err != nil {
		return nil, err
	}
	if len(schema.Tables) == 0 {
		color.Yellow("⚠️  No tables found in %s source", cfg.Source.Provider)
	}
	return schema, nil
}

// One cache serves every session the process opens, sized by the first
// config that asks for it.
var (
	sharedCacheOnce sync.Once
	sharedCache     *gencommon.GenerationCache
	sharedCacheErr  error
)

func generationCache(size int) (*gencommon.GenerationCache, error) {
	sharedCacheOnce.Do(func() {
		sharedCache, sharedCacheErr = gencommon.NewGenerationCache(size)
	})
	return sharedCache, sharedCacheErr
}

func newSession(cfg *config.Config, schema *types.Schema) (*session.Session, error) {
	format, err := cfg.SelectedFormat()
	if err != nil {
		return nil, err
	}
	theme, err := cfg.SelectedTheme()
	if err != nil {
		return nil, err
	}
	cache, err := generationCache(cfg.Cache.Size)
	if err != nil {
		return nil, err
	}
	return session.New(schema,
		session.WithFormat(format),
		session.WithTheme(theme),
		session.WithCache(cache),
	)
}

func outputPath(cfg *config.Config, out, defaultName string) string {
	if out != "" {
		return out
	}
	return filepath.Join(cfg.OutDir, defaultName)
}

func writeOutput(path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
