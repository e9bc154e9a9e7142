package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradebook/internal/db"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/google/uuid"
)

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
// Rows carry a per-student seq so reads return insertion order.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

// Append stores a after every existing assignment of the student and
// returns its sequence number. The seq is allocated in the same statement
// as the insert.
func (r *SQLiteAssignmentRepo) Append(ctx context.Context, studentID string, a domain.Assignment) (int, error) {
	query := `INSERT INTO assignments (id, student_id, seq, name, type, score, weight, created_at)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?
		FROM assignments WHERE student_id = ?
		RETURNING seq`
	var seq int
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		studentID,
		a.Name,
		string(a.Type),
		a.Score,
		a.Weight,
		formatTime(nowUTC()),
		studentID,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("inserting assignment %q: %w", a.Name, err)
	}
	return seq, nil
}

func (r *SQLiteAssignmentRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Assignment, error) {
	query := `SELECT name, type, score, weight FROM assignments WHERE student_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments by student: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var typ string
		if err := rows.Scan(&a.Name, &typ, &a.Score, &a.Weight); err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		a.Type = domain.AssignmentType(typ)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return out, nil
}

func (r *SQLiteAssignmentRepo) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments WHERE student_id = ?`, studentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting assignments: %w", err)
	}
	return n, nil
}
