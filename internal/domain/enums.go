package domain

import (
	"fmt"
	"strings"
)

type AssignmentType string

const (
	Formative AssignmentType = "Formative"
	Summative AssignmentType = "Summative"
)

// ParseAssignmentType accepts only the exact, case-sensitive type labels.
func ParseAssignmentType(s string) (AssignmentType, error) {
	switch AssignmentType(s) {
	case Formative, Summative:
		return AssignmentType(s), nil
	default:
		return "", fmt.Errorf("assignment type %q must be %q or %q", s, Formative, Summative)
	}
}

type Progression string

const (
	Passed Progression = "Passed"
	Failed Progression = "Failed"
)

type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// ParseSortOrder reports false for anything other than the two exact
// literals and falls back to Ascending.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case Ascending, Descending:
		return SortOrder(s), true
	default:
		return Ascending, false
	}
}

// Title returns the order with its first letter upper-cased ("Ascending").
func (o SortOrder) Title() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}
