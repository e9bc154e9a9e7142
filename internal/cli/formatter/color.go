package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ProgressionPill returns a colored verdict such as "● PASSED".
func ProgressionPill(p domain.Progression) string {
	switch p {
	case domain.Passed:
		return StyleGreen.Render("● PASSED")
	case domain.Failed:
		return StyleRed.Render("● FAILED")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(p)))
	}
}

// TypeBadge colors an assignment type label.
func TypeBadge(t domain.AssignmentType) string {
	switch t {
	case domain.Formative:
		return StyleBlue.Render(string(t))
	case domain.Summative:
		return StylePurple.Render(string(t))
	default:
		return StyleDim.Render(string(t))
	}
}

// ThresholdStyle is green when score meets threshold and red otherwise.
func ThresholdStyle(score, threshold float64) lipgloss.Style {
	if score >= threshold {
		return StyleGreen
	}
	return StyleRed
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
