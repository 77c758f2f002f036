package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/castqc/internal/db"
)

// FailOnNthExecSource is a test db.Source that injects an error on the Nth
// ExecContext call. Calls are counted starting at 1; reads pass through.
// OpenErr, when set, is returned from Conn instead of a connection.
type FailOnNthExecSource struct {
	DB      *sql.DB
	FailOn  int32
	Err     error
	OpenErr error

	count atomic.Int32
}

func (s *FailOnNthExecSource) Conn(ctx context.Context) (db.DBTX, error) {
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return &failOnNthExec{DBTX: s.DB, src: s}, nil
}

type failOnNthExec struct {
	db.DBTX
	src *FailOnNthExecSource
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.src.count.Add(1)
	if n == f.src.FailOn {
		return nil, f.src.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
