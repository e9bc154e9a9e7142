package cli

import (
	"fmt"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
	)

	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created student %s (%s)\n", s.Name, s.ID)
			return nil
		},
	}
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List students with their assignment counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			students, err := app.Students.List(ctx)
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(students))
			for _, s := range students {
				n, err := app.Students.CountAssignments(ctx, s.ID)
				if err != nil {
					return err
				}
				counts[s.ID] = n
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(students, counts))
			return nil
		},
	}
}
