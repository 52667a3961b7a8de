package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"jobtrack-cli/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [json|csv]",
		Short: "Export the collection for backup or spreadsheets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "json"
			if len(args) > 0 {
				kind = strings.ToLower(strings.TrimSpace(args[0]))
			}

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

			var payload []byte
			switch kind {
			case "json":
				payload, err = export.JSON(apps, prefs, time.Now())
				if err != nil {
					return writeErr(cmd, err)
				}
			case "csv":
				payload = []byte(export.CSV(apps))
			default:
				return writeErr(cmd, fmt.Errorf("unknown export format: %q (expected json|csv)", kind))
			}

			if out = strings.TrimSpace(out); out != "" {
				if err := os.WriteFile(out, payload, 0o644); err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{"format": kind, "path": out, "apps": len(apps)},
				})
			}

			// Raw payload on stdout so exports pipe cleanly.
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}
