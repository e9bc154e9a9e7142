package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradebook/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// assignmentTypeValue is a pflag.Value accepting only the exact
// Formative/Summative labels.
type assignmentTypeValue struct {
	target *domain.AssignmentType
}

var _ pflag.Value = (*assignmentTypeValue)(nil)

func (v *assignmentTypeValue) String() string { return string(*v.target) }

func (v *assignmentTypeValue) Set(s string) error {
	t, err := domain.ParseAssignmentType(s)
	if err != nil {
		return err
	}
	*v.target = t
	return nil
}

func (v *assignmentTypeValue) Type() string { return "Formative|Summative" }

// addStudentFlag registers the required --student flag on cmd.
func addStudentFlag(cmd *cobra.Command, ref *string) {
	cmd.Flags().StringVarP(ref, "student", "s", "", "Student ID or exact name (required)")
	_ = cmd.MarkFlagRequired("student")
}

// addOrderFlag registers --order. The value is passed through unvalidated;
// an unknown order falls back to ascending with a warning.
func addOrderFlag(fs *pflag.FlagSet, order *string, def string) {
	fs.StringVarP(order, "order", "o", def, "Sort by score: ascending or descending")
}

// missingFlags returns the names of flags in names that were not set.
func missingFlags(fs *pflag.FlagSet, names ...string) []string {
	var missing []string
	for _, n := range names {
		if !fs.Changed(n) {
			missing = append(missing, "--"+n)
		}
	}
	return missing
}

func parseNumber(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: enter a number", field, s)
	}
	return v, nil
}
