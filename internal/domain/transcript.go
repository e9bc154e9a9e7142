package domain

// InvalidOrderWarning is reported when a transcript is requested with an
// unrecognised sort order.
const InvalidOrderWarning = "Invalid input for sorting order. Defaulting to 'ascending'."

// Transcript is a student's assignments sorted for presentation.
type Transcript struct {
	StudentName string
	Order       SortOrder
	Assignments []Assignment
	Warnings    []string
}

// BuildTranscript sorts the student's assignments by score. An invalid
// orderArg never fails: it records a warning and sorts ascending.
func BuildTranscript(s *Student, orderArg string) Transcript {
	order, ok := ParseSortOrder(orderArg)
	t := Transcript{StudentName: s.Name, Order: order}
	if !ok {
		t.Warnings = append(t.Warnings, InvalidOrderWarning)
	}
	t.Assignments = s.SortedAssignments(order)
	return t
}
