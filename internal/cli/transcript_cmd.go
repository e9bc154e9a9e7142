package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/alexanderramin/gradebook/internal/contract"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/spf13/cobra"
)

func newTranscriptCmd(app *App) *cobra.Command {
	var ref, order string

	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Print a student's assignments sorted by score",
		Long: `Print a student's assignments sorted by score. An unknown --order
prints a warning on stderr and sorts ascending.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewTranscriptRequest(ref)
			req.Order = order

			resp, err := app.Reports.Transcript(cmd.Context(), req)
			if err != nil {
				return err
			}

			writeWarnings(cmd.ErrOrStderr(), resp.Transcript)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTranscript(resp.Transcript))
			return nil
		},
	}

	addStudentFlag(cmd, &ref)
	addOrderFlag(cmd.Flags(), &order, app.defaultOrder())
	return cmd
}

func writeWarnings(w io.Writer, t domain.Transcript) {
	for _, msg := range t.Warnings {
		fmt.Fprintln(w, msg)
	}
}
