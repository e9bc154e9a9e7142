package cli

import (
	"fmt"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgressionCmd(app *App) *cobra.Command {
	var ref string
	var detail bool

	cmd := &cobra.Command{
		Use:   "progression",
		Short: "Print Passed or Failed for a student",
		Long: `Print Passed or Failed for a student. A student passes when the
formative group score is at least 30 and the summative group score is at
least 20. Use --detail for the group scores behind the verdict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reports.Progression(cmd.Context(), ref)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if detail {
				fmt.Fprint(out, formatter.FormatProgression(resp))
				return nil
			}
			fmt.Fprintln(out, resp.Progression)
			return nil
		},
	}

	addStudentFlag(cmd, &ref)
	cmd.Flags().BoolVar(&detail, "detail", false, "Show group scores and resubmissions")
	return cmd
}

func newResubmitCmd(app *App) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "resubmit",
		Short: "List formative assignments scored below 50",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reports.Progression(cmd.Context(), ref)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResubmissions(resp.Resubmissions))
			return nil
		},
	}

	addStudentFlag(cmd, &ref)
	return cmd
}
