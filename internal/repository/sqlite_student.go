package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradebook/internal/db"
	"github.com/alexanderramin/gradebook/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = nowUTC()
	}
	query := `INSERT INTO students (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, formatTime(s.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student %q: %w", s.Name, ErrDuplicate)
		}
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, name, created_at FROM students WHERE id = ?`
	return r.scanStudent(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteStudentRepo) GetByName(ctx context.Context, name string) (*domain.Student, error) {
	query := `SELECT id, name, created_at FROM students WHERE name = ?`
	return r.scanStudent(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT id, name, created_at FROM students ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		var id, name, createdAt string
		if err := rows.Scan(&id, &name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		s, err := populateStudent(id, name, createdAt)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) scanStudent(row *sql.Row) (*domain.Student, error) {
	var id, name, createdAt string
	if err := row.Scan(&id, &name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	return populateStudent(id, name, createdAt)
}

func populateStudent(id, name, createdAt string) (*domain.Student, error) {
	created, err := parseTime("created_at", createdAt)
	if err != nil {
		return nil, err
	}
	s := domain.NewStudent(name)
	s.ID = id
	s.CreatedAt = created
	return s, nil
}
