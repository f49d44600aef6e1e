package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db   *sql.DB
	qb   squirrel.StatementBuilderType
	path string
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// DataSourceName turns a sqlite:// URL or plain path into a read-only DSN.
func DataSourceName(url string) (path, dsn string) {
	path = strings.TrimPrefix(strings.TrimPrefix(url, "sqlite://"), "file:")
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	return path, "file:" + path + "?mode=ro"
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	path, dsn := DataSourceName(url)
	if path == "" {
		return fmt.Errorf("empty SQLite path")
	}
	// mode=ro would otherwise fail late with an opaque error.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	s.path = path
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
