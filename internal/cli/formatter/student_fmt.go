package formatter

import (
	"fmt"

	"github.com/alexanderramin/gradebook/internal/domain"
)

// FormatStudentList renders students with their assignment counts.
func FormatStudentList(students []*domain.Student, counts map[string]int) string {
	if len(students) == 0 {
		return Dim("No students yet. Add one with 'gradebook student add NAME'.") + "\n"
	}

	headers := []string{"ID", "NAME", "ASSIGNMENTS", "CREATED"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			fmt.Sprintf("%d", counts[s.ID]),
			Dim(s.CreatedAt.Format("Jan 2, 2006")),
		})
	}
	return RenderBox("Students", RenderTable(headers, rows, WithRightAlign(2)))
}

// FormatAssignmentList renders a student's assignments in insertion order.
func FormatAssignmentList(s *domain.Student) string {
	as := s.Assignments()
	if len(as) == 0 {
		return Dim(fmt.Sprintf("%s has no assignments.", s.Name)) + "\n"
	}

	headers := []string{"#", "ASSIGNMENT", "TYPE", "SCORE", "WEIGHT", "WEIGHTED"}
	rows := make([][]string, 0, len(as))
	for i, a := range as {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(a.Name),
			TypeBadge(a.Type),
			FormatNumber(a.Score),
			FormatNumber(a.Weight),
			Dim(FormatNumber(a.WeightedScore())),
		})
	}
	return RenderBox("Assignments · "+s.Name, RenderTable(headers, rows, WithRightAlign(0, 3, 4, 5)))
}
