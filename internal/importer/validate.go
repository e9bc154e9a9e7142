package importer

import (
	"fmt"

	"github.com/alexanderramin/gradebook/internal/domain"
)

// Validate checks the schema before conversion and returns every problem
// found. Score and weight ranges are not checked.
func Validate(schema *GradebookSchema) []error {
	var errs []error

	if len(schema.Students) == 0 {
		errs = append(errs, fmt.Errorf("students: at least one student is required"))
	}

	seen := make(map[string]bool)
	for i, s := range schema.Students {
		prefix := fmt.Sprintf("students[%d]", i)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seen[s.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate student %q", prefix, s.Name))
		}
		seen[s.Name] = true

		for j, a := range s.Assignments {
			errs = append(errs, validateAssignment(fmt.Sprintf("%s.assignments[%d]", prefix, j), a)...)
		}
	}

	return errs
}

func validateAssignment(prefix string, a AssignmentImport) []error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if _, err := domain.ParseAssignmentType(a.Type); err != nil {
		errs = append(errs, fmt.Errorf("%s.type: %w", prefix, err))
	}
	if a.Score == nil {
		errs = append(errs, fmt.Errorf("%s.score is required", prefix))
	}
	if a.Weight == nil {
		errs = append(errs, fmt.Errorf("%s.weight is required", prefix))
	}
	return errs
}
