package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the collection with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Seeding over an empty collection is harmless; overwriting
			// real data needs confirmation.
			if !yes {
				apps, err := s.LoadApps()
				if err != nil {
					return writeErr(cmd, err)
				}
				if len(apps) > 0 {
					return writeErr(cmd, errConfirmRequired("seed (collection is not empty)"))
				}
			}

			demo, err := s.SeedDemo()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": demo})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Replace existing applications")
	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all applications (preferences are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errConfirmRequired("clear"))
			}
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.ClearApps(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"cleared": true}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing all applications")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Factory reset: delete applications and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errConfirmRequired("reset"))
			}
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Reset(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"reset": true}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm factory reset")
	return cmd
}
