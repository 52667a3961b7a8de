package cli

import (
	"jobtrack-cli/internal/model"

	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and change tracker preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(app))
	cmd.AddCommand(newPrefsSetCmd(app))
	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			prefs, err := s.LoadPrefs()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": prefs})
		},
	}
	return cmd
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var density string
	var defaultSort string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences (only passed flags change)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			prefs, err := s.LoadPrefs()
			if err != nil {
				return writeErr(cmd, err)
			}

			if cmd.Flags().Changed("density") {
				d, err := model.ParseDensity(density)
				if err != nil {
					return writeErr(cmd, err)
				}
				prefs.Density = d
			}
			if cmd.Flags().Changed("sort") {
				m, err := model.ParseSortMode(defaultSort)
				if err != nil {
					return writeErr(cmd, err)
				}
				prefs.DefaultSort = m
			}

			if err := s.SavePrefs(prefs); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": prefs})
		},
	}

	cmd.Flags().StringVar(&density, "density", "", "List density (comfort|compact)")
	cmd.Flags().StringVar(&defaultSort, "sort", "", "Default sort order (newest|oldest|company|status)")
	return cmd
}
