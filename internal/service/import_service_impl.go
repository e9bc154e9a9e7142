package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gradebook/internal/db"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/importer"
	"github.com/alexanderramin/gradebook/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading gradebook: %w", err)
	}
	return s.Import(ctx, schema)
}

// Import stores every student and assignment of schema in one transaction.
// Nothing is written when any student fails.
func (s *importService) Import(ctx context.Context, schema *importer.GradebookSchema) (result *ImportResult, err error) {
	fields := map[string]any{"students": len(schema.Students)}
	defer observe(ctx, s.observer, "import-gradebook", time.Now(), fields, &err)

	var students []*domain.Student
	students, err = importer.Convert(schema)
	if err != nil {
		return nil, err
	}

	result = &ImportResult{Students: students}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStudents := repository.NewSQLiteStudentRepo(tx)
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)

		for _, st := range students {
			if err := txStudents.Create(ctx, st); err != nil {
				return fmt.Errorf("importing student %q: %w", st.Name, err)
			}
			for _, a := range st.Assignments() {
				if _, err := txAssignments.Append(ctx, st.ID, a); err != nil {
					return fmt.Errorf("importing student %q: %w", st.Name, err)
				}
				result.AssignmentCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["assignments"] = result.AssignmentCount
	return result, nil
}
