// Package ledger reads a GnuCash book saved in SQLite format.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotLedger is returned when the file is SQLite but has no GnuCash tables.
	ErrNotLedger = errors.New("not a GnuCash sqlite ledger")
	// ErrNoTransactions is returned when a date range is requested over no postings.
	ErrNoTransactions = errors.New("ledger has no matching transactions")
)

// Reader is a read-only view of a ledger file.
type Reader struct {
	path string
	db   *sql.DB
}

// Open opens the ledger at path read-only and checks that it looks like a GnuCash book.
func Open(ctx context.Context, path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("checking ledger file: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('accounts', 'splits', 'transactions')`).Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	if n != 3 {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotLedger)
	}

	return &Reader{path: path, db: db}, nil
}

// Path returns the ledger file path.
func (r *Reader) Path() string {
	return r.path
}

// LastUpdated returns the ledger file's modification time.
func (r *Reader) LastUpdated() (time.Time, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat ledger: %w", err)
	}
	return info.ModTime(), nil
}

// Close releases the database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}
