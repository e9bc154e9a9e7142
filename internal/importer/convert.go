package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/google/uuid"
)

// Convert validates schema and builds students with their assignments in
// file order. Validation problems are joined into one error.
func Convert(schema *GradebookSchema) ([]*domain.Student, error) {
	if errs := Validate(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid gradebook: %w", errors.Join(errs...))
	}

	now := time.Now().UTC().Truncate(time.Second)
	students := make([]*domain.Student, 0, len(schema.Students))
	for _, si := range schema.Students {
		s := domain.NewStudent(si.Name)
		s.ID = uuid.New().String()
		s.CreatedAt = now
		for _, ai := range si.Assignments {
			// Type was checked by Validate.
			t, _ := domain.ParseAssignmentType(ai.Type)
			s.AddAssignment(domain.NewAssignment(ai.Name, t, *ai.Score, *ai.Weight))
		}
		students = append(students, s)
	}
	return students, nil
}
