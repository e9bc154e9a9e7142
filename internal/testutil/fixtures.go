package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/google/uuid"
)

var testAssignmentCounter atomic.Int64

// StudentOption customises a fixture student.
type StudentOption func(*domain.Student)

// WithAssignments appends as to the fixture student in order.
func WithAssignments(as ...domain.Assignment) StudentOption {
	return func(s *domain.Student) {
		for _, a := range as {
			s.AddAssignment(a)
		}
	}
}

func WithCreatedAt(t time.Time) StudentOption {
	return func(s *domain.Student) {
		s.CreatedAt = t
	}
}

func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	s := domain.NewStudent(name)
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now().UTC().Truncate(time.Second)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssignmentOption customises a fixture assignment.
type AssignmentOption func(*domain.Assignment)

func WithName(name string) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Name = name
	}
}

func WithWeight(w float64) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Weight = w
	}
}

// Formative returns a formative fixture weighted 100 unless overridden.
func Formative(score float64, opts ...AssignmentOption) domain.Assignment {
	return newTestAssignment(domain.Formative, score, opts...)
}

// Summative returns a summative fixture weighted 100 unless overridden.
func Summative(score float64, opts ...AssignmentOption) domain.Assignment {
	return newTestAssignment(domain.Summative, score, opts...)
}

func newTestAssignment(t domain.AssignmentType, score float64, opts ...AssignmentOption) domain.Assignment {
	a := domain.Assignment{
		Name:   fmt.Sprintf("%s %d", t, testAssignmentCounter.Add(1)),
		Type:   t,
		Score:  score,
		Weight: 100,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
