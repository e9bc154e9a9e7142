package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	version, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"students", "assignments"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`,
		"idx_assignments_student_type").Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_AssignmentTypeCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, name, created_at) VALUES ('s1', 'Alice', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		VALUES ('a1', 's1', 1, 'Quiz', 'formative', 50, 10, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "lower-case type should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		VALUES ('a1', 's1', 1, 'Quiz', 'Formative', 50, 10, '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_AssignmentSeqUniquePerStudent(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, name, created_at) VALUES ('s1', 'Alice', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		VALUES ('a1', 's1', 1, 'Quiz', 'Formative', 50, 10, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		VALUES ('a2', 's1', 1, 'Quiz', 'Formative', 50, 10, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate seq for one student should violate UNIQUE")
}

func TestMigrate_CascadeDeletesAssignments(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO students (id, name, created_at) VALUES ('s1', 'Alice', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		VALUES ('a1', 's1', 1, 'Quiz', 'Formative', 50, 10, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM students WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM assignments`).Scan(&n))
	assert.Equal(t, 0, n)
}
