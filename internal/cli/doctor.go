package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errDoctorProblemsFound = errors.New("doctor found problems")

func newDoctorCmd(app *App) *cobra.Command {
	var fail bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the workspace store and record invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			report, err := s.Doctor()
			if err != nil {
				return writeErr(cmd, err)
			}

			if err := writeOut(cmd, app, map[string]any{
				"data": report,
				"meta": map[string]any{
					"problems": len(report.Problems),
				},
			}); err != nil {
				return err
			}

			if fail && len(report.Problems) > 0 {
				return errDoctorProblemsFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Exit with non-zero status if problems are found")
	return cmd
}
