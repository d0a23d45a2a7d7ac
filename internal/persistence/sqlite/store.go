// Package sqlite implements the persistence.Store interface on top of the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/campus-scheduler/internal/persistence"
)

// queryer is satisfied by both *sql.DB and *sql.Tx, letting the same
// repository methods run inside and outside transactions.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements persistence.Store against SQLite.
type Store struct {
	pool *ConnectionPool
	q    queryer
	inTx bool
}

var _ persistence.Store = (*Store)(nil)

// Open connects to the SQLite database at the given DSN. Callers should
// invoke Migrate before use.
func Open(dsn string) (*Store, error) {
	pool, err := NewConnectionPool(dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, q: pool.DB()}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.pool.Close()
}

// WithTx runs fn against a transaction-scoped store view. When the store is
// already transaction-scoped the callback joins the open transaction.
func (s *Store) WithTx(ctx context.Context, fn func(persistence.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		return fn(&Store{pool: s.pool, q: tx, inTx: true})
	})
}
