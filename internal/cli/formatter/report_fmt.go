package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradebook/internal/contract"
	"github.com/alexanderramin/gradebook/internal/domain"
)

const scoreBarWidth = 10

// FormatProgression renders group scores, the verdict and the
// resubmission list.
func FormatProgression(resp *contract.ProgressionResponse) string {
	var b strings.Builder

	headers := []string{"GROUP", "SCORE", "NEEDS", "COUNT"}
	rows := [][]string{
		groupRow(resp.Formative),
		groupRow(resp.Summative),
	}
	b.WriteString(RenderTable(headers, rows, WithRightAlign(3)))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Progression: %s\n", ProgressionPill(resp.Progression)))

	b.WriteString("\n")
	b.WriteString(FormatResubmissions(resp.Resubmissions))

	return b.String()
}

func groupRow(g contract.GroupScoreView) []string {
	return []string{
		TypeBadge(g.Type),
		RenderScoreBar(g.Score, g.Threshold, scoreBarWidth),
		Dim(fmt.Sprintf(">= %s", FormatNumber(g.Threshold))),
		fmt.Sprintf("%d", g.Count),
	}
}

// FormatResubmissions lists formative work eligible for resubmission.
func FormatResubmissions(as []domain.Assignment) string {
	if len(as) == 0 {
		return StyleGreen.Render("No assignments eligible for resubmission.") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Eligible for resubmission (%d):", len(as))) + "\n")
	for _, a := range as {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("↻"), Bold(a.Name)+Dim(" "+FormatNumber(a.Score)+"%")))
	}
	return b.String()
}

// FormatReport combines progression and the styled transcript in one box.
func FormatReport(resp *contract.ProgressionResponse, t domain.Transcript) string {
	var b strings.Builder
	b.WriteString(FormatProgression(resp))
	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Transcript (%s)", t.Order.Title())))
	b.WriteString("\n")
	b.WriteString(FormatTranscriptTable(t))
	return RenderBox("Report · "+resp.StudentName, b.String())
}
