package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every migration newer than the database's user_version.
// Each step runs in its own transaction together with the version bump.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if err := applyMigration(db, i); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaVersion returns the number of migrations applied to db.
func SchemaVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

func applyMigration(db *sql.DB, i int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range migrations[i] {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
		return fmt.Errorf("bumping schema version: %w", err)
	}
	return tx.Commit()
}

var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS students (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS assignments (
			id         TEXT PRIMARY KEY,
			student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			seq        INTEGER NOT NULL,
			name       TEXT NOT NULL,
			type       TEXT NOT NULL CHECK(type IN ('Formative','Summative')),
			score      REAL NOT NULL,
			weight     REAL NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE(student_id, seq)
		)`,
	},
	{
		`CREATE INDEX IF NOT EXISTS idx_assignments_student_type ON assignments(student_id, type)`,
	},
}
