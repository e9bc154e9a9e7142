package repository

import (
	"fmt"
	"time"
)

// formatTime renders t in UTC RFC3339 for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 column, naming the column on failure.
func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current time truncated to the storage precision.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
