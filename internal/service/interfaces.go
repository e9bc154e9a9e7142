package service

import (
	"context"

	"github.com/alexanderramin/gradebook/internal/contract"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/importer"
)

// StudentService manages students and their append-only assignments.
// A student ref is either the student's ID or their exact name.
type StudentService interface {
	Create(ctx context.Context, name string) (*domain.Student, error)
	Resolve(ctx context.Context, ref string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	AddAssignment(ctx context.Context, ref string, a domain.Assignment) (*domain.Student, error)
	Load(ctx context.Context, ref string) (*domain.Student, error)
	CountAssignments(ctx context.Context, studentID string) (int, error)
}

type ReportService interface {
	Progression(ctx context.Context, ref string) (*contract.ProgressionResponse, error)
	Transcript(ctx context.Context, req contract.TranscriptRequest) (*contract.TranscriptResponse, error)
}

// ImportResult holds the outcome of a gradebook import.
type ImportResult struct {
	Students        []*domain.Student
	AssignmentCount int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	Import(ctx context.Context, schema *importer.GradebookSchema) (*ImportResult, error)
}
