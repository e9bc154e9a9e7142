package repository

import (
	"context"

	"github.com/alexanderramin/gradebook/internal/domain"
)

// StudentRepo stores student identities. Assignments are stored separately
// and attached by the service layer.
type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	GetByName(ctx context.Context, name string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
}

// AssignmentRepo is append-only: there is no update or delete.
type AssignmentRepo interface {
	Append(ctx context.Context, studentID string, a domain.Assignment) (int, error)
	ListByStudent(ctx context.Context, studentID string) ([]domain.Assignment, error)
	CountByStudent(ctx context.Context, studentID string) (int, error)
}
