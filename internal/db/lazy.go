package db

import (
	"context"
	"database/sql"
	"sync"
)

// Lazy defers opening the database until the first Conn call and reuses the
// handle afterwards. A failed open is not cached; the next call tries again.
type Lazy struct {
	path string
	open func(path string) (*sql.DB, error)

	mu sync.Mutex
	db *sql.DB
}

// NewLazy returns a Lazy handle for the database at path.
func NewLazy(path string) *Lazy {
	return &Lazy{path: path, open: OpenDB}
}

func (l *Lazy) Conn(ctx context.Context) (DBTX, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db != nil {
		return l.db, nil
	}
	db, err := l.open(l.path)
	if err != nil {
		return nil, err
	}
	l.db = db
	return db, nil
}

// Path returns the database location.
func (l *Lazy) Path() string {
	return l.path
}

// Opened reports whether the database has been opened.
func (l *Lazy) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close closes the database if it was opened.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
