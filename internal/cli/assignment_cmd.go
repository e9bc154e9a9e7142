package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradebook/internal/cli/formatter"
	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/spf13/cobra"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignment",
		Short: "Record and list assignments",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
	)

	return cmd
}

// assignmentInput holds the raw values of an assignment being recorded,
// from flags or from the interactive form.
type assignmentInput struct {
	Student string
	Name    string
	Type    domain.AssignmentType
	Score   string
	Weight  string
}

func (in assignmentInput) build() (domain.Assignment, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Assignment{}, fmt.Errorf("assignment name is required")
	}
	if _, err := domain.ParseAssignmentType(string(in.Type)); err != nil {
		return domain.Assignment{}, err
	}
	score, err := parseNumber("score", in.Score)
	if err != nil {
		return domain.Assignment{}, err
	}
	weight, err := parseNumber("weight", in.Weight)
	if err != nil {
		return domain.Assignment{}, err
	}
	return domain.NewAssignment(name, in.Type, score, weight), nil
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var in assignmentInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an assignment to a student",
		Long: `Append an assignment to a student. Assignments are never edited or
removed. When flags are missing on an interactive terminal a form asks
for them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			missing := missingFlags(cmd.Flags(), "student", "name", "type", "score", "weight")
			if len(missing) > 0 {
				if !app.interactive() {
					return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
				}
				if err := runAssignmentForm(ctx, app, &in); err != nil {
					return err
				}
			}

			a, err := in.build()
			if err != nil {
				return err
			}

			s, err := app.Students.AddAssignment(ctx, in.Student, a)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, score %s, weight %s) to %s [%d assignments]\n",
				a.Name, a.Type, formatter.FormatNumber(a.Score), formatter.FormatNumber(a.Weight),
				s.Name, len(s.Assignments()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Student, "student", "s", "", "Student ID or exact name")
	cmd.Flags().StringVar(&in.Name, "name", "", "Assignment name")
	cmd.Flags().Var(&assignmentTypeValue{target: &in.Type}, "type", "Assignment type: Formative or Summative")
	cmd.Flags().StringVar(&in.Score, "score", "", "Score, usually 0-100")
	cmd.Flags().StringVar(&in.Weight, "weight", "", "Weight as a percentage within its type")

	return cmd
}

func runAssignmentForm(ctx context.Context, app *App, in *assignmentInput) error {
	form, err := assignmentForm(ctx, app, in)
	if err != nil {
		return err
	}
	if err := form.Run(); err != nil {
		return fmt.Errorf("assignment form: %w", err)
	}
	return nil
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a student's assignments in the order they were added",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Load(cmd.Context(), ref)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssignmentList(s))
			return nil
		},
	}

	addStudentFlag(cmd, &ref)
	return cmd
}
