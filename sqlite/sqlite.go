// Package sqlite provides SQLite-based storage for the documentation index,
// full-text search over it using FTS5, and schema introspection of SQLite
// databases.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/docboost"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// pragmas are applied to every connection before the schema is created.
// WAL is skipped for in-memory databases, which do not support it.
var pragmas = []struct {
	stmt     string
	inMemory bool
}{
	{"PRAGMA busy_timeout = 5000", true},
	{"PRAGMA foreign_keys = ON", true},
	{"PRAGMA journal_mode = WAL", false},
}

// Open opens the database and creates the documentation tables if needed.
// Failures are reported as ESTORE errors naming the database path.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return docboost.Errorf(docboost.ESTORE, "opening database %s: %v", db.path, err)
	}

	// One connection keeps the store the only writer and keeps in-memory
	// databases alive across queries.
	conn.SetMaxOpenConns(1)

	if err := db.init(conn); err != nil {
		conn.Close()
		return docboost.Errorf(docboost.ESTORE, "opening database %s: %v", db.path, err)
	}
	db.db = conn
	return nil
}

func (db *DB) init(conn *sql.DB) error {
	if err := conn.Ping(); err != nil {
		return err
	}
	for _, p := range pragmas {
		if db.path == ":memory:" && !p.inMemory {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("%s: %w", p.stmt, err)
		}
	}
	if _, err := conn.Exec(schemaDDL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
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

// schemaDDL holds the metadata and full-text tables. The full-text row of a
// document shares its rowid with the metadata id.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS documentation_meta (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT UNIQUE NOT NULL,
	title TEXT NOT NULL,
	type TEXT NOT NULL,
	category TEXT,
	source TEXT,
	indexed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documentation_meta_type ON documentation_meta(type);

CREATE VIRTUAL TABLE IF NOT EXISTS documentation_fts USING fts5(
	title,
	content,
	url UNINDEXED,
	type UNINDEXED,
	category UNINDEXED,
	tokenize = 'porter unicode61'
);
`
