package cli

import (
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/alexanderramin/gradebook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Students service.StudentService
	Reports  service.ReportService
	Imports  service.ImportService

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool

	// DefaultOrder seeds the --order flag of transcript and report.
	DefaultOrder string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultOrder() string {
	if a.DefaultOrder == "" {
		return string(domain.Ascending)
	}
	return a.DefaultOrder
}

// NewRootCmd creates the top-level "gradebook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gradebook",
		Short:         "Student progression from weighted assignment scores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStudentCmd(app),
		newAssignmentCmd(app),
		newProgressionCmd(app),
		newResubmitCmd(app),
		newTranscriptCmd(app),
		newReportCmd(app),
		newImportCmd(app),
	)

	return root
}
