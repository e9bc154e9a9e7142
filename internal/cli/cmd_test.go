package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/gradebook/internal/db"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/repository"
	"github.com/alexanderramin/gradebook/internal/service"
	"github.com/alexanderramin/gradebook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	students := service.NewStudentService(
		repository.NewSQLiteStudentRepo(database),
		repository.NewSQLiteAssignmentRepo(database),
	)
	return &App{
		Students: students,
		Reports:  service.NewReportService(students),
		Imports:  service.NewImportService(db.NewSQLiteUnitOfWork(database)),
	}
}

// executeCmd runs a cobra command and captures stdout and stderr together.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	stdout, stderr, err := executeCmdSplit(t, app, args...)
	return stdout + stderr, err
}

// executeCmdSplit runs a cobra command and captures stdout and stderr separately.
func executeCmdSplit(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func mustExec(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "gradebook %s", strings.Join(args, " "))
	return out
}

func addAssignment(t *testing.T, app *App, student, name, typ, score, weight string) {
	t.Helper()
	mustExec(t, app, "assignment", "add",
		"--student", student, "--name", name, "--type", typ, "--score", score, "--weight", weight)
}

// seedCarol adds the resubmission example: two formative pieces below 50.
func seedCarol(t *testing.T, app *App) {
	t.Helper()
	mustExec(t, app, "student", "add", "Carol")
	addAssignment(t, app, "Carol", "Quiz 1", "Formative", "45", "30")
	addAssignment(t, app, "Carol", "Quiz 2", "Formative", "55", "30")
	addAssignment(t, app, "Carol", "Final", "Summative", "10", "100")
	addAssignment(t, app, "Carol", "Quiz 3", "Formative", "49.9", "40")
}

// --- student ---

func TestStudentAdd_AndList(t *testing.T) {
	app := testApp(t)

	out := mustExec(t, app, "student", "add", "Alice")
	assert.Contains(t, out, "Created student Alice")

	addAssignment(t, app, "Alice", "Essay", "Formative", "70", "50")

	out = mustExec(t, app, "student", "list")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "1")
}

func TestStudentList_Empty(t *testing.T) {
	app := testApp(t)
	out := mustExec(t, app, "student", "ls")
	assert.Contains(t, out, "No students yet")
}

func TestStudentAdd_Duplicate(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")

	_, err := executeCmd(t, app, "student", "add", "Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestStudentAdd_RequiresName(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "student", "add")
	require.Error(t, err)
}

// --- assignment ---

func TestAssignmentAdd_ByID(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")

	students, err := app.Students.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)

	out := mustExec(t, app, "assignment", "add", "-s", students[0].ID,
		"--name", "Lab", "--type", "Summative", "--score", "62.5", "--weight", "25")
	assert.Contains(t, out, "Added Lab (Summative, score 62.5, weight 25) to Alice [1 assignments]")
}

func TestAssignmentAdd_MissingFlagsNonInteractive(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")

	_, err := executeCmd(t, app, "assignment", "add", "--student", "Alice", "--name", "Quiz", "--type", "Formative")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: --score, --weight")
}

func TestAssignmentAdd_RejectsLowercaseType(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")

	_, err := executeCmd(t, app, "assignment", "add", "--student", "Alice",
		"--name", "Quiz", "--type", "formative", "--score", "40", "--weight", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"formative"`)
}

func TestAssignmentAdd_RejectsNonNumericScore(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")

	_, err := executeCmd(t, app, "assignment", "add", "--student", "Alice",
		"--name", "Quiz", "--type", "Formative", "--score", "high", "--weight", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid score "high"`)
}

func TestAssignmentAdd_UnknownStudent(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "assignment", "add", "--student", "Ghost",
		"--name", "Quiz", "--type", "Formative", "--score", "40", "--weight", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssignmentList_InsertionOrder(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	out := mustExec(t, app, "assignment", "list", "--student", "Carol")
	i1 := strings.Index(out, "Quiz 1")
	i2 := strings.Index(out, "Quiz 2")
	iF := strings.Index(out, "Final")
	i3 := strings.Index(out, "Quiz 3")
	require.True(t, i1 >= 0 && i2 >= 0 && iF >= 0 && i3 >= 0, out)
	assert.True(t, i1 < i2 && i2 < iF && iF < i3, "assignments listed in the order added")
}

func TestAssignmentList_RequiresStudent(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "assignment", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student")
}

// --- progression / resubmit ---

func TestProgression_Passed(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")
	addAssignment(t, app, "Alice", "A", "Formative", "40", "50")
	addAssignment(t, app, "Alice", "B", "Formative", "60", "50")
	addAssignment(t, app, "Alice", "C", "Summative", "50", "100")

	stdout, stderr, err := executeCmdSplit(t, app, "progression", "--student", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Passed\n", stdout)
	assert.Empty(t, stderr)
}

func TestProgression_FailedWithoutSummative(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Bob")
	addAssignment(t, app, "Bob", "X", "Formative", "20", "100")

	out := mustExec(t, app, "progression", "--student", "Bob")
	assert.Equal(t, "Failed\n", out)
}

func TestProgression_Detail(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	out := mustExec(t, app, "progression", "--student", "Carol", "--detail")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "Eligible for resubmission (2):")
}

func TestResubmit(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	out := mustExec(t, app, "resubmit", "--student", "Carol")
	assert.Contains(t, out, "Quiz 1")
	assert.Contains(t, out, "Quiz 3")
	assert.NotContains(t, out, "Quiz 2")
	assert.NotContains(t, out, "Final")
}

func TestResubmit_None(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Alice")
	addAssignment(t, app, "Alice", "Essay", "Formative", "50", "100")

	out := mustExec(t, app, "resubmit", "--student", "Alice")
	assert.Contains(t, out, "No assignments eligible for resubmission.")
}

// --- transcript / report ---

func TestTranscript_Descending(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	stdout, stderr, err := executeCmdSplit(t, app, "transcript", "--student", "Carol", "--order", "descending")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, `
Transcript Breakdown (Descending Order):
Assignment           Type         Score(%)   Weight (%)
--------------------------------------------------
Quiz 2               Formative    55         30
Quiz 3               Formative    49.9       40
Quiz 1               Formative    45         30
Final                Summative    10         100
--------------------------------------------------
`, stdout)
}

func TestTranscript_InvalidOrderWarnsOnStderr(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	stdout, stderr, err := executeCmdSplit(t, app, "transcript", "--student", "Carol", "--order", "Descending")
	require.NoError(t, err)
	assert.Equal(t, domain.InvalidOrderWarning+"\n", stderr)
	assert.Contains(t, stdout, "Transcript Breakdown (Ascending Order):")
	assert.Less(t, strings.Index(stdout, "Final"), strings.Index(stdout, "Quiz 2"))
}

func TestTranscript_DefaultOrderFromApp(t *testing.T) {
	app := testApp(t)
	app.DefaultOrder = "descending"
	seedCarol(t, app)

	out := mustExec(t, app, "transcript", "--student", "Carol")
	assert.Contains(t, out, "(Descending Order)")
}

func TestTranscript_EmptyStudent(t *testing.T) {
	app := testApp(t)
	mustExec(t, app, "student", "add", "Nobody")

	out := mustExec(t, app, "transcript", "--student", "Nobody")
	rule := strings.Repeat("-", 50)
	assert.Equal(t, 2, strings.Count(out, rule))
	assert.True(t, strings.HasSuffix(out, rule+"\n"+rule+"\n"))
}

func TestReport(t *testing.T) {
	app := testApp(t)
	seedCarol(t, app)

	stdout, stderr, err := executeCmdSplit(t, app, "report", "--student", "Carol", "-o", "sideways")
	require.NoError(t, err)
	assert.Equal(t, domain.InvalidOrderWarning+"\n", stderr)
	assert.Contains(t, stdout, "REPORT · CAROL")
	assert.Contains(t, stdout, "TRANSCRIPT (ASCENDING)")
	assert.Contains(t, stdout, "FAILED")
}

// --- import ---

func writeGradebook(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradebook.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImport(t *testing.T) {
	app := testApp(t)
	path := writeGradebook(t, `{"students": [
		{"name": "Alice", "assignments": [
			{"name": "A", "type": "Formative", "score": 40, "weight": 50},
			{"name": "B", "type": "Formative", "score": 60, "weight": 50},
			{"name": "C", "type": "Summative", "score": 50, "weight": 100}
		]},
		{"name": "Bob", "assignments": []}
	]}`)

	out := mustExec(t, app, "import", path)
	assert.Contains(t, out, "Imported 2 students (3 assignments)")
	assert.Contains(t, out, "Alice (3 assignments)")

	assert.Equal(t, "Passed\n", mustExec(t, app, "progression", "--student", "Alice"))
	assert.Equal(t, "Failed\n", mustExec(t, app, "progression", "--student", "Bob"))
}

func TestImport_InvalidFileStoresNothing(t *testing.T) {
	app := testApp(t)
	path := writeGradebook(t, `{"students": [
		{"name": "Alice", "assignments": [{"name": "A", "type": "formative", "score": 40, "weight": 50}]}
	]}`)

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)

	students, err := app.Students.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestImport_MissingFile(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
