package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/castqc/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the castings table.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// CountRecords returns the number of rows in the castings table.
func CountRecords(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	if err := database.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM castings`).Scan(&n); err != nil {
		t.Fatalf("counting castings: %v", err)
	}
	return n
}

// StoredRecord is the subset of a castings row that tests assert on.
type StoredRecord struct {
	CastingName    string
	Executor1      string
	Controller1    string
	Submitted      int
	AcceptanceDate string
	Accepted       int
	Note           string
	Quantities     []int
}

// LoadRecord reads the castings row with the given ID.
func LoadRecord(t *testing.T, database *sql.DB, id int64) StoredRecord {
	t.Helper()
	var rec StoredRecord
	row := database.QueryRowContext(context.Background(), `SELECT
		Наименование_отливки, Исполнитель1, Контролер1,
		Контроль_подано, Контроль_дата_приемки, Контроль_принято, Примечание
		FROM castings WHERE ID = ?`, id)
	if err := row.Scan(&rec.CastingName, &rec.Executor1, &rec.Controller1,
		&rec.Submitted, &rec.AcceptanceDate, &rec.Accepted, &rec.Note); err != nil {
		t.Fatalf("loading casting %d: %v", id, err)
	}

	rows, err := database.QueryContext(context.Background(), `SELECT * FROM castings WHERE ID = ?`, id)
	if err != nil {
		t.Fatalf("loading casting %d quantities: %v", id, err)
	}
	defer rows.Close()
	cols, _ := rows.Columns()
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if !rows.Next() {
		t.Fatalf("casting %d not found", id)
	}
	if err := rows.Scan(ptrs...); err != nil {
		t.Fatalf("scanning casting %d: %v", id, err)
	}
	// ID, 8 base columns, quantities, note.
	for _, v := range vals[9 : len(vals)-1] {
		n, _ := v.(int64)
		rec.Quantities = append(rec.Quantities, int(n))
	}
	return rec
}
