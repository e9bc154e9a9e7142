package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/repository"
	"github.com/alexanderramin/gradebook/internal/testutil"
	"github.com/stretchr/testify/require"
)

// recordingObserver collects use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type testServices struct {
	db       *sql.DB
	students StudentService
	reports  ReportService
	imports  ImportService
	observer *recordingObserver
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}

	students := NewStudentService(
		repository.NewSQLiteStudentRepo(database),
		repository.NewSQLiteAssignmentRepo(database),
		obs,
	)
	return &testServices{
		db:       database,
		students: students,
		reports:  NewReportService(students, obs),
		imports:  NewImportService(testutil.NewTestUoW(database), obs),
		observer: obs,
	}
}

// seedStudent creates a student and appends as in order.
func (ts *testServices) seedStudent(t *testing.T, name string, as ...domain.Assignment) *domain.Student {
	t.Helper()
	ctx := context.Background()
	s, err := ts.students.Create(ctx, name)
	require.NoError(t, err)
	for _, a := range as {
		_, err := ts.students.AddAssignment(ctx, s.ID, a)
		require.NoError(t, err)
	}
	return s
}
