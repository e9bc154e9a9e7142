package contract

import "github.com/alexanderramin/gradebook/internal/domain"

// GroupScoreView is the weighted average for one assignment type against
// the threshold it must meet.
type GroupScoreView struct {
	Type      domain.AssignmentType
	Score     float64
	Threshold float64
	Count     int
}

// Met reports whether the group score reaches its threshold.
func (g GroupScoreView) Met() bool {
	return g.Score >= g.Threshold
}

type ProgressionResponse struct {
	StudentID     string
	StudentName   string
	Formative     GroupScoreView
	Summative     GroupScoreView
	Progression   domain.Progression
	Resubmissions []domain.Assignment
}
