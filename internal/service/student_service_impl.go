package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/repository"
	"github.com/google/uuid"
)

type studentService struct {
	students    repository.StudentRepo
	assignments repository.AssignmentRepo
	observer    UseCaseObserver
}

func NewStudentService(
	students repository.StudentRepo,
	assignments repository.AssignmentRepo,
	observers ...UseCaseObserver,
) StudentService {
	return &studentService{
		students:    students,
		assignments: assignments,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *studentService) Create(ctx context.Context, name string) (student *domain.Student, err error) {
	defer observe(ctx, s.observer, "create-student", time.Now(), map[string]any{"student": name}, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("student name is required")
	}

	student = domain.NewStudent(name)
	student.ID = uuid.New().String()
	student.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if err = s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Resolve looks ref up as an ID first, then as a name. The returned
// student carries no assignments; use Load for a hydrated student.
func (s *studentService) Resolve(ctx context.Context, ref string) (*domain.Student, error) {
	if ref == "" {
		return nil, fmt.Errorf("student is required")
	}
	student, err := s.students.GetByID(ctx, ref)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	student, err = s.students.GetByName(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("student %q: %w", ref, repository.ErrNotFound)
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *studentService) AddAssignment(ctx context.Context, ref string, a domain.Assignment) (student *domain.Student, err error) {
	fields := map[string]any{"student": ref, "assignment": a.Name, "type": string(a.Type)}
	defer observe(ctx, s.observer, "add-assignment", time.Now(), fields, &err)

	student, err = s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	var seq int
	seq, err = s.assignments.Append(ctx, student.ID, a)
	if err != nil {
		return nil, err
	}
	fields["seq"] = seq
	return s.hydrate(ctx, student)
}

// Load returns the student with every stored assignment in insertion order.
func (s *studentService) Load(ctx context.Context, ref string) (*domain.Student, error) {
	student, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, student)
}

func (s *studentService) CountAssignments(ctx context.Context, studentID string) (int, error) {
	return s.assignments.CountByStudent(ctx, studentID)
}

func (s *studentService) hydrate(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	as, err := s.assignments.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("loading assignments for %q: %w", student.Name, err)
	}
	for _, a := range as {
		student.AddAssignment(a)
	}
	return student, nil
}
