package cli

import (
	"fmt"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/alexanderramin/gradebook/internal/contract"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var ref, order string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show group scores, verdict, resubmissions and transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			prog, err := app.Reports.Progression(ctx, ref)
			if err != nil {
				return err
			}

			req := contract.NewTranscriptRequest(prog.StudentID)
			req.Order = order
			tr, err := app.Reports.Transcript(ctx, req)
			if err != nil {
				return err
			}

			writeWarnings(cmd.ErrOrStderr(), tr.Transcript)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(prog, tr.Transcript))
			return nil
		},
	}

	addStudentFlag(cmd, &ref)
	addOrderFlag(cmd.Flags(), &order, app.defaultOrder())
	return cmd
}
