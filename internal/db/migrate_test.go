package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?) ORDER BY cid`, table)
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		cols = append(cols, name)
	}
	require.NoError(t, rows.Err())
	return cols
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesCastingsTable(t *testing.T) {
	db := openTestDB(t)

	cols := tableColumns(t, db, "castings")
	require.Len(t, cols, domain.ColumnCount+1)
	assert.Equal(t, "ID", cols[0])
	assert.Equal(t, domain.InspectionColumns(), cols[1:])
}

func TestMigrate_AutoIncrementID(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO castings (Наименование_отливки) VALUES ('a')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO castings (Наименование_отливки) VALUES ('b')`)
	require.NoError(t, err)

	var maxID int64
	require.NoError(t, db.QueryRow(`SELECT MAX(ID) FROM castings`).Scan(&maxID))
	assert.Equal(t, int64(2), maxID)
}

func TestOpenDB_FileCreatesDirectoryAndWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "castings.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.FileExists(t, path)
}

func TestOpenDB_ExistingFileKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "castings.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO castings (Наименование_отливки) VALUES ('Ригель')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM castings`).Scan(&count))
	assert.Equal(t, 1, count)
}
