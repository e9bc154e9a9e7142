package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradebook/internal/domain"
)

// transcriptRule is the 50-dash separator above and below the rows.
var transcriptRule = strings.Repeat("-", 50)

const transcriptRowFormat = "%-20s %-12s %-10s %s\n"

// TranscriptHeaders are the column titles of the plain transcript.
var TranscriptHeaders = []string{"Assignment", "Type", "Score(%)", "Weight (%)"}

// TranscriptRows returns one row of cells per assignment, in transcript order.
func TranscriptRows(t domain.Transcript) [][]string {
	rows := make([][]string, 0, len(t.Assignments))
	for _, a := range t.Assignments {
		rows = append(rows, []string{a.Name, string(a.Type), FormatNumber(a.Score), FormatNumber(a.Weight)})
	}
	return rows
}

// FormatTranscript renders the fixed-width plain-text transcript. Warnings
// are not included; callers write them to their diagnostic sink.
func FormatTranscript(t domain.Transcript) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nTranscript Breakdown (%s Order):\n", t.Order.Title())
	fmt.Fprintf(&b, transcriptRowFormat, TranscriptHeaders[0], TranscriptHeaders[1], TranscriptHeaders[2], TranscriptHeaders[3])
	b.WriteString(transcriptRule + "\n")
	for _, row := range TranscriptRows(t) {
		fmt.Fprintf(&b, transcriptRowFormat, row[0], row[1], row[2], row[3])
	}
	b.WriteString(transcriptRule + "\n")

	return b.String()
}

// FormatTranscriptTable renders the transcript as a styled table for the
// report view.
func FormatTranscriptTable(t domain.Transcript) string {
	headers := []string{"ASSIGNMENT", "TYPE", "SCORE", "WEIGHT"}
	rows := make([][]string, 0, len(t.Assignments))
	for _, a := range t.Assignments {
		rows = append(rows, []string{
			Bold(a.Name),
			TypeBadge(a.Type),
			FormatNumber(a.Score),
			Dim(FormatNumber(a.Weight)),
		})
	}
	if len(rows) == 0 {
		return Dim("No assignments recorded.") + "\n"
	}
	return RenderTable(headers, rows, WithRightAlign(2, 3))
}
