package db

import (
	"context"
	"database/sql"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
// Repository implementations depend on this interface instead of the
// concrete *sql.DB.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Source hands out a DBTX, opening the underlying database if needed.
type Source interface {
	Conn(ctx context.Context) (DBTX, error)
}

// Static adapts an already-open DBTX to Source.
type Static struct {
	DB DBTX
}

func (s Static) Conn(context.Context) (DBTX, error) {
	return s.DB, nil
}

// Compile-time verification that *sql.DB and *sql.Tx satisfy DBTX.
var (
	_ DBTX   = (*sql.DB)(nil)
	_ DBTX   = (*sql.Tx)(nil)
	_ Source = Static{}
	_ Source = (*Lazy)(nil)
)
