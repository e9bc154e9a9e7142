package domain

import (
	"sort"
	"time"
)

// Progression thresholds and the resubmission cut-off, in percent.
const (
	FormativePassThreshold = 30.0
	SummativePassThreshold = 20.0
	ResubmissionThreshold  = 50.0
)

// Student owns an ordered, append-only collection of assignments.
// A Student is not safe for concurrent mutation.
type Student struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	assignments []Assignment
}

func NewStudent(name string) *Student {
	return &Student{Name: name}
}

// AddAssignment appends a to the collection without validation.
func (s *Student) AddAssignment(a Assignment) {
	s.assignments = append(s.assignments, a)
}

// Assignments returns a copy of the collection in insertion order.
func (s *Student) Assignments() []Assignment {
	out := make([]Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// GroupScore returns the weighted average score, on the 0-100 scale, of all
// assignments of type t. Weighted scores are already scaled by weight/100,
// so the sum is normalized by the group's total weight in the same unit.
// A group with no total weight scores 0.
func (s *Student) GroupScore(t AssignmentType) float64 {
	var weighted, totalWeight float64
	for _, a := range s.assignments {
		if a.Type != t {
			continue
		}
		weighted += a.WeightedScore()
		totalWeight += a.Weight
	}
	if totalWeight > 0 {
		return weighted / (totalWeight / 100)
	}
	return 0
}

// CheckProgression applies the pass rule to both group scores.
func (s *Student) CheckProgression() Progression {
	formative := s.GroupScore(Formative)
	summative := s.GroupScore(Summative)
	if formative >= FormativePassThreshold && summative >= SummativePassThreshold {
		return Passed
	}
	return Failed
}

// ResubmissionEligible returns formative work scoring below the
// resubmission threshold, in insertion order.
func (s *Student) ResubmissionEligible() []Assignment {
	out := []Assignment{}
	for _, a := range s.assignments {
		if a.Type == Formative && a.Score < ResubmissionThreshold {
			out = append(out, a)
		}
	}
	return out
}

// SortedAssignments returns a new slice ordered by score. Equal scores keep
// their insertion order in both directions.
func (s *Student) SortedAssignments(order SortOrder) []Assignment {
	out := s.Assignments()
	if order == Descending {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	}
	return out
}
