package domain

// Assignment is a single graded item. Weight is a percentage of its
// type group; weights inside a group are not required to sum to 100.
type Assignment struct {
	Name   string
	Type   AssignmentType
	Score  float64
	Weight float64
}

func NewAssignment(name string, t AssignmentType, score, weight float64) Assignment {
	return Assignment{Name: name, Type: t, Score: score, Weight: weight}
}

// WeightedScore scales the score by the assignment's percentage weight.
func (a Assignment) WeightedScore() float64 {
	return a.Score * (a.Weight / 100)
}
