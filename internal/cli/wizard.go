package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gradebookHuhTheme returns a huh theme matching the formatter palette.
func gradebookHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// assignmentForm builds a form for the fields of in that are still empty.
// The student field becomes a select over existing students.
func assignmentForm(ctx context.Context, app *App, in *assignmentInput) (*huh.Form, error) {
	var fields []huh.Field

	if in.Student == "" {
		students, err := app.Students.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(students) == 0 {
			return nil, fmt.Errorf("no students yet; add one with 'gradebook student add NAME'")
		}
		options := make([]huh.Option[string], 0, len(students))
		for _, s := range students {
			options = append(options, huh.NewOption(s.Name, s.ID))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Student").
			Options(options...).
			Value(&in.Student))
	}

	if in.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Assignment Name").
			Value(&in.Name).
			Validate(validateRequired))
	}

	if in.Type == "" {
		fields = append(fields, huh.NewSelect[domain.AssignmentType]().
			Title("Type").
			Options(
				huh.NewOption(string(domain.Formative), domain.Formative),
				huh.NewOption(string(domain.Summative), domain.Summative),
			).
			Value(&in.Type))
	}

	if in.Score == "" {
		fields = append(fields, numberInput("Score", "0-100", &in.Score))
	}
	if in.Weight == "" {
		fields = append(fields, numberInput("Weight (%)", "e.g. 40", &in.Weight))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(gradebookHuhTheme()).
		WithShowHelp(false), nil
}

func numberInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateNumber)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateNumber accepts any decimal number. Scores outside 0-100 are
// allowed.
func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}
