// Package database provides SQLite persistence for categories, sprints,
// and daily entries, plus vault export/import and the legacy JSON
// migration. All rule checks live in the engine package; this layer only
// persists, atomically per call.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/util"
)

const defaultDBTimeout = 5 * time.Second

// schemaQueries run in order on every open. All statements are
// idempotent so reopening an existing database is safe.
var schemaQueries = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sprints (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		sprint_id TEXT NOT NULL REFERENCES sprints(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
		title TEXT NOT NULL,
		details TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_sprint_date
		ON entries (sprint_id, date, category_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	)`,
}

// Database wraps the SQLite handle. It satisfies engine.Store.
type Database struct {
	DB     *sql.DB
	dbFile string
}

var _ engine.Store = (*Database)(nil)

// Open opens (creating if needed) the database at dbPath, applies the
// schema, and runs the startup pipeline: legacy JSON migration, default
// category seeding, and sprint code normalization.
func Open(ctx context.Context, dbPath string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Database{DB: db, dbFile: dbPath}
	if err := d.initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) initialize(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	for _, query := range schemaQueries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := d.migrateLegacyJSON(ctx); err != nil {
		return err
	}
	if err := d.ensureDefaultCategories(ctx); err != nil {
		return err
	}
	return d.normalizeSprintCodes(ctx)
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		if err := fn(tx); err != nil {
			return rollbackWithLog(tx, err)
		}
		return tx.Commit()
	})
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		util.LogError("transaction rollback", rbErr)
	}
	return err
}
