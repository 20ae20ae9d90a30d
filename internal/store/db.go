package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the SQL execution surface the record store needs. Both
// *sql.DB and *sql.Tx satisfy it, so the insert path can run on the pool in
// production and on a transaction in integration tests that roll back.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
