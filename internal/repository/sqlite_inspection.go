package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/castqc/internal/db"
	"github.com/alexanderramin/castqc/internal/domain"
)

// insertInspectionSQL lists every castings column in domain.InspectionColumns
// order with one positional placeholder each.
var insertInspectionSQL = buildInsertInspectionSQL()

func buildInsertInspectionSQL() string {
	cols := domain.InspectionColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO castings (%s) VALUES (%s)", strings.Join(cols, ", "), placeholders)
}

// SQLiteInspectionRepo implements InspectionRepo on the castings table.
type SQLiteInspectionRepo struct {
	src db.Source
}

// NewSQLiteInspectionRepo creates a repo that obtains its connection from src
// on every insert, so a lazily opened database is only touched on first save.
func NewSQLiteInspectionRepo(src db.Source) *SQLiteInspectionRepo {
	return &SQLiteInspectionRepo{src: src}
}

func (r *SQLiteInspectionRepo) Insert(ctx context.Context, rec *domain.InspectionRecord) (int64, error) {
	conn, err := r.src.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("opening inspection store: %w", err)
	}

	res, err := conn.ExecContext(ctx, insertInspectionSQL, rec.Values()...)
	if err != nil {
		return 0, fmt.Errorf("inserting inspection record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inspection record id: %w", err)
	}
	rec.ID = id
	return id, nil
}
