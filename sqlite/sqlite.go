// Package sqlite provides the FTS5-backed search index for qtdoc services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// The index holds one FTS5 row per corpus page. url and path_rel are
// returned verbatim with hits and are not tokenized. The meta table records
// provenance for diagnostics only.
const schema = `
	CREATE VIRTUAL TABLE IF NOT EXISTS docs USING fts5(
		title, headings, body, url UNINDEXED, path_rel UNINDEXED,
		tokenize='unicode61 remove_diacritics 2'
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT
	);
`

// DB represents a SQLite database connection.
type DB struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// NewReadOnlyDB creates a DB that opens the file read-only and does not
// create the schema. Queries against a missing or foreign file fail with
// the driver's "no such table"/"unable to open" errors, which callers map
// to the search-unavailable condition.
func NewReadOnlyDB(path string) *DB {
	return &DB{path: path, readOnly: true}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	dsn := db.path
	if db.readOnly {
		dsn = "file:" + db.path + "?mode=ro"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if !db.readOnly {
		// Enable WAL mode for file-based databases for better write
		// performance and concurrent reads during a build.
		// Note: WAL mode is not supported for in-memory databases.
		if db.path != ":memory:" {
			if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
				conn.Close()
				return fmt.Errorf("failed to enable WAL mode: %w", err)
			}
		}

		if _, err := conn.Exec(schema); err != nil {
			conn.Close()
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	db.db = conn
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}
