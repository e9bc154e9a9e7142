package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// GradebookSchema is the top-level JSON structure of a gradebook file.
type GradebookSchema struct {
	Students []StudentImport `json:"students"`
}

// StudentImport is one student and their assignments in file order.
type StudentImport struct {
	Name        string             `json:"name"`
	Assignments []AssignmentImport `json:"assignments"`
}

// AssignmentImport mirrors domain.Assignment. Score and Weight are pointers
// so a missing field can be told apart from an explicit zero.
type AssignmentImport struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Score  *float64 `json:"score"`
	Weight *float64 `json:"weight"`
}

// LoadFile reads and parses a gradebook JSON file.
func LoadFile(path string) (*GradebookSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a gradebook document. Unknown fields such as "wieght" are
// rejected.
func Parse(r io.Reader) (*GradebookSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema GradebookSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing gradebook file: %w", err)
	}
	return &schema, nil
}
