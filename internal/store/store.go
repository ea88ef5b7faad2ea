package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tupyy/audiobook-scanner/internal/store/migrations"
)

// QueryInterceptor is the subset of *sql.DB and *sql.Tx used by the stores.
type QueryInterceptor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewDB opens a DuckDB database. Use ":memory:" for an in-memory database.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = ""
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}
	return db, nil
}

// Store provides access to all storage repositories.
type Store struct {
	db         *sql.DB
	audiobooks *AudiobookStore
	scanErrors *ScanErrorStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		audiobooks: NewAudiobookStore(newLoggingInterceptor(db)),
		scanErrors: NewScanErrorStore(newLoggingInterceptor(db)),
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Audiobook() *AudiobookStore {
	return s.audiobooks
}

func (s *Store) ScanError() *ScanErrorStore {
	return s.scanErrors
}

// WithTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &Store{
		db:         s.db,
		audiobooks: NewAudiobookStore(newLoggingInterceptor(tx)),
		scanErrors: NewScanErrorStore(newLoggingInterceptor(tx)),
	}
	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
