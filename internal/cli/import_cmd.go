package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import students and assignments from a JSON gradebook",
		Long: `Import students and assignments from a JSON gradebook file:

  {"students": [{"name": "Alice", "assignments": [
    {"name": "Quiz 1", "type": "Formative", "score": 45, "weight": 30}]}]}

The whole file is validated first and stored in one transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d students (%d assignments)\n", len(result.Students), result.AssignmentCount)
			for _, s := range result.Students {
				fmt.Fprintf(out, "  %s (%d assignments)\n", s.Name, len(s.Assignments()))
			}
			return nil
		},
	}
}
