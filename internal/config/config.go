package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/Rana718/nitrix/internal/artifact"
	"github.com/Rana718/nitrix/internal/database"
	"github.com/Rana718/nitrix/internal/gencommon"
	"github.com/Rana718/nitrix/internal/preview"
	"github.com/Rana718/nitrix/internal/types"
)

const FileName = "nitrix.config.json"

type Config struct {
	Version      string   `json:"version" mapstructure:"version"`
	Format       string   `json:"format" mapstructure:"format"`
	Theme        string   `json:"theme" mapstructure:"theme"`
	OutDir       string   `json:"out_dir" mapstructure:"out_dir"`
	PreviewLimit int      `json:"preview_limit" mapstructure:"preview_limit"`
	Source       Source   `json:"source" mapstructure:"source"`
	Cache        Cache    `json:"cache" mapstructure:"cache"`
	Artifact     Artifact `json:"artifact" mapstructure:"artifact"`
}

type Source struct {
	Provider string `json:"provider" mapstructure:"provider"`
	// Path is used by the sqlite and file providers; URLEnv names the
	// environment variable holding a connection URL otherwise.
	Path   string `json:"path,omitempty" mapstructure:"path"`
	URLEnv string `json:"url_env" mapstructure:"url_env"`
}

type Cache struct {
	Size int `json:"size" mapstructure:"size"`
}

// Artifact configures where `project --upload` publishes archives. Keys and
// secrets are read from NITRIX_S3_ACCESS_KEY / NITRIX_S3_SECRET_KEY only.
type Artifact struct {
	Store     string `json:"store" mapstructure:"store"`
	Dir       string `json:"dir,omitempty" mapstructure:"dir"`
	Endpoint  string `json:"endpoint,omitempty" mapstructure:"endpoint"`
	Region    string `json:"region,omitempty" mapstructure:"region"`
	Bucket    string `json:"bucket,omitempty" mapstructure:"bucket"`
	UseSSL    bool   `json:"use_ssl,omitempty" mapstructure:"use_ssl"`
	URLExpiry string `json:"url_expiry,omitempty" mapstructure:"url_expiry"`
}

var artifactStores = []string{"dir", "s3"}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Format == "" {
		c.Format = string(types.FormatReact)
	}
	if c.Theme == "" {
		c.Theme = string(types.ThemeLight)
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.PreviewLimit <= 0 {
		c.PreviewLimit = preview.DefaultLimit
	}
	if c.Source.Provider == "" {
		c.Source.Provider = "sqlite"
	}
	if c.Source.URLEnv == "" {
		c.Source.URLEnv = "DATABASE_URL"
	}
	if c.Cache.Size <= 0 {
		c.Cache.Size = gencommon.DefaultCacheSize
	}
	if c.Artifact.Store == "" {
		c.Artifact.Store = "dir"
	}
	if c.Artifact.Store == "dir" && c.Artifact.Dir == "" {
		c.Artifact.Dir = "nitrix_artifacts"
	}
}

func (c *Config) Validate() error {
	if _, err := types.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := types.ParseTheme(c.Theme); err != nil {
		return err
	}
	if !slices.Contains(database.Providers, c.Source.Provider) {
		return fmt.Errorf("%w: %s. Supported providers: %v", database.ErrUnsupportedProvider, c.Source.Provider, database.Providers)
	}
	if !slices.Contains(artifactStores, c.Artifact.Store) {
		return fmt.Errorf("unsupported artifact store: %s. Supported stores: %v", c.Artifact.Store, artifactStores)
	}
	if c.Artifact.URLExpiry != "" {
		if _, err := time.ParseDuration(c.Artifact.URLExpiry); err != nil {
			return fmt.Errorf("invalid artifact.url_expiry: %w", err)
		}
	}
	return nil
}

func (c *Config) SelectedFormat() (types.Format, error) {
	return types.ParseFormat(c.Format)
}

func (c *Config) SelectedTheme() (types.Theme, error) {
	return types.ParseTheme(c.Theme)
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Source.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Source.URLEnv)
	}
	return dbURL, nil
}

// SourceLocation resolves what the loader should open: an explicit path for
// sqlite and file providers, otherwise the URL from the environment.
func (c *Config) SourceLocation() (string, error) {
	switch c.Source.Provider {
	case "sqlite", "sqlite3", "file":
		if c.Source.Path != "" {
			return c.Source.Path, nil
		}
	}
	if c.Source.Provider == "file" {
		return "", fmt.Errorf("source.path is required for the file provider")
	}
	return c.GetDatabaseURL()
}

func (c *Config) S3Config() artifact.S3Config {
	expiry, _ := time.ParseDuration(c.Artifact.URLExpiry)
	return artifact.S3ConfigFromEnv(artifact.S3Config{
		Endpoint:  c.Artifact.Endpoint,
		Region:    c.Artifact.Region,
		Bucket:    c.Artifact.Bucket,
		UseSSL:    c.Artifact.UseSSL,
		URLExpiry: expiry,
	})
}

func (c *Config) NewArtifactStore() (artifact.Store, error) {
	if c.Artifact.Store == "s3" {
		return artifact.NewS3Store(c.S3Config())
	}
	return artifact.NewDirStore(c.Artifact.Dir)
}

func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
