// Package store implements the SQLite-backed aggregate repository for
// Workbench projects. Every exported operation runs in its own
// transaction: statements either all take effect or none do, and no
// database types leak past this package's boundary.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/workbench/pkg/types"
)

// DBFileName is the SQLite database file created inside Config.DataDir.
const DBFileName = "workbench.db"

// Store is the data-access layer over the project tables. Open one per
// process; operations are invoked sequentially by the caller.
type Store struct {
	config types.Config
	db     *sql.DB
}

// Open validates the config, creates the data directory if needed, opens
// the SQLite database, enables foreign-key enforcement, applies the
// schema, and seeds the category catalog when configured.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Cascading deletes of materials, steps, and category links depend
	// on this pragma; SQLite ships with it off.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	s := &Store{config: config, db: db}

	if config.SeedCategories {
		if err := s.seedCategories(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding categories: %w", err)
		}
	}

	return s, nil
}

// Close releases the database connection. Idempotent; operations after
// Close return ErrStoreClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	return nil
}

// withTx runs fn inside a transaction: commit when fn returns nil, roll
// back and propagate when it does not. The rollback also covers a failed
// commit path, where it is a no-op.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
