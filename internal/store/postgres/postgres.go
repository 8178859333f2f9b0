// Package postgres implements the store interfaces on PostgreSQL using
// database/sql over the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/questguild/quests-tracker/internal/logger"
	"github.com/questguild/quests-tracker/internal/store"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// dbtx is satisfied by both *sql.DB and *sql.Tx so queries can run inside
// or outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the PostgreSQL-backed implementation of store.Store.
type Store struct {
	db *sql.DB // nil when the store is scoped to a transaction
	q  dbtx
}

var _ store.Store = (*Store)(nil)

// New creates a Store over an open database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// WithinTx runs fn against a transaction-scoped store at serializable
// isolation. Guard checks and the mutation they protect must share one
// call so concurrent writers cannot interleave between read and write.
func (s *Store) WithinTx(ctx context.Context, fn func(store.Store) error) error {
	if s.db == nil {
		// Already inside a transaction; nesting reuses it.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&Store{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Errorf("Failed to roll back transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
