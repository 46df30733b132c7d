// Package sqlite opens a SQLite database (pure Go driver, no cgo) and exposes
// it as a storage.Storage through sqlstore.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"mangatrade/pkg/storage/sqlstore"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Options defines the configuration parameters for a SQLite database.
type Options struct {
	// Path is the database file; MemoryPath or an empty string opens an in-memory database.
	Path string
	// BusyTimeout is how long a connection waits on a locked database before failing.
	BusyTimeout time.Duration
	// MaxOpenConnections is the maximum number of open connections. In-memory
	// databases always use a single connection.
	MaxOpenConnections int
}

func dataSourceName(options Options) string {
	path := options.Path
	if path == "" {
		path = MemoryPath
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", options.BusyTimeout.Milliseconds()))
	if path != MemoryPath {
		q.Add("_pragma", "journal_mode(WAL)")
	}

	// SQLite decodes %HH escapes in URI paths, so '?', '#' and '%' in a
	// file name stay part of the path.
	dsn := url.URL{Scheme: "file", Opaque: (&url.URL{Path: path}).EscapedPath(), RawQuery: q.Encode()}

	return dsn.String()
}

// New opens (creating if needed) the SQLite database described by options.
func New(ctx context.Context, options Options) (*sqlstore.Store, error) {
	if options.Path != "" && options.Path != MemoryPath {
		if dir := filepath.Dir(options.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: mnd
				return nil, fmt.Errorf("could not create database directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", dataSourceName(options))
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	maxOpen := options.MaxOpenConnections
	if maxOpen <= 0 || options.Path == "" || options.Path == MemoryPath {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	// an in-memory database lives exactly as long as its connection
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not ping sqlite database: %w", err)
	}

	return sqlstore.New(db, sqlstore.SQLite, nil), nil
}
