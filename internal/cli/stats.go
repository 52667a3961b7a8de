package cli

import (
	"jobtrack-cli/internal/view"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Pipeline summary over the whole collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			apps, err := s.LoadApps()
			if err != nil {
				return writeErr(cmd, err)
			}

			stats := view.ComputeStats(apps)
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"stats":        stats,
					"topCompanies": view.TopCompanies(apps, top),
				},
				"meta": map[string]any{
					"maxCount": stats.MaxCount(),
				},
			})
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "Number of top companies to include")
	return cmd
}
