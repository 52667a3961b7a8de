package cli

import (
	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/view"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var query string
	var status string
	var sortFlag string
	var grouped bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications (filtered and sorted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			apps, err := s.LoadApps()
			if err != nil {
				return writeErr(cmd, err)
			}
			prefs, err := s.LoadPrefs()
			if err != nil {
				return writeErr(cmd, err)
			}

			controls := view.DefaultControls(prefs)
			controls.Query = query
			if status != "" {
				if status != view.StatusAll {
					if _, err := model.ParseStatus(status); err != nil {
						return writeErr(cmd, err)
					}
				}
				controls.Status = status
			}
			if sortFlag != "" {
				mode, err := model.ParseSortMode(sortFlag)
				if err != nil {
					return writeErr(cmd, err)
				}
				controls.Sort = mode
			}

			shown := view.Filter(apps, controls)
			meta := map[string]any{
				"total": len(apps),
				"shown": len(shown),
				"sort":  string(controls.Sort),
			}

			if grouped {
				cols := view.Group(shown)
				type column struct {
					Status model.Status        `json:"status"`
					Label  string              `json:"label"`
					Apps   []model.Application `json:"apps"`
				}
				out := make([]column, 0, len(cols))
				for _, c := range cols {
					out = append(out, column{Status: c.Status, Label: c.Status.Label(), Apps: c.Apps})
				}
				return writeOut(cmd, app, map[string]any{"data": out, "meta": meta})
			}

			return writeOut(cmd, app, map[string]any{"data": shown, "meta": meta})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Match against company and role (case-insensitive)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (applied|interview|offer|rejected|all)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort order (newest|oldest|company|status; default: prefs)")
	cmd.Flags().BoolVar(&grouped, "group", false, "Group results into status columns")
	return cmd
}
