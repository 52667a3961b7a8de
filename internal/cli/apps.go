package cli

import (
	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/store"
	"jobtrack-cli/internal/validate"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var d validate.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a job application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := validate.Check(d); len(errs) > 0 {
				return writeErr(cmd, errValidation(errs))
			}

			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			now := store.NowMillis()
			rec := model.Application{ID: store.NewID(), CreatedAt: now, UpdatedAt: now}
			d.Apply(&rec)
			if err := s.Add(rec); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}

	cmd.Flags().StringVar(&d.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&d.Role, "role", "", "Role title")
	cmd.Flags().StringVar(&d.Status, "status", "applied", "Status (applied|interview|offer|rejected)")
	cmd.Flags().StringVar(&d.AppliedDate, "date", "", "Applied date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.Link, "link", "", "Job posting URL")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var flags validate.Draft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an application (only passed flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			cur, ok, err := s.Get(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNotFound("application", id))
			}

			// Start from the stored record; overlay only the flags the user set.
			d := validate.Draft{
				Company:     cur.Company,
				Role:        cur.Role,
				Status:      string(cur.Status),
				AppliedDate: cur.AppliedDate,
				Link:        cur.Link,
				Notes:       cur.Notes,
			}
			if cmd.Flags().Changed("company") {
				d.Company = flags.Company
			}
			if cmd.Flags().Changed("role") {
				d.Role = flags.Role
			}
			if cmd.Flags().Changed("status") {
				d.Status = flags.Status
			}
			if cmd.Flags().Changed("date") {
				d.AppliedDate = flags.AppliedDate
			}
			if cmd.Flags().Changed("link") {
				d.Link = flags.Link
			}
			if cmd.Flags().Changed("notes") {
				d.Notes = flags.Notes
			}

			if errs := validate.Check(d); len(errs) > 0 {
				return writeErr(cmd, errValidation(errs))
			}

			rec, _, err := s.Update(id, func(a *model.Application) { d.Apply(a) })
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}

	cmd.Flags().StringVar(&flags.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&flags.Role, "role", "", "Role title")
	cmd.Flags().StringVar(&flags.Status, "status", "", "Status (applied|interview|offer|rejected)")
	cmd.Flags().StringVar(&flags.AppliedDate, "date", "", "Applied date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Link, "link", "", "Job posting URL")
	cmd.Flags().StringVar(&flags.Notes, "notes", "", "Free-form notes")
	return cmd
}

func newSetStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an application through the pipeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			status, err := model.ParseStatus(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}

			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec, ok, err := s.Update(id, func(a *model.Application) { a.Status = status })
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNotFound("application", id))
			}
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errConfirmRequired("delete"))
			}
			id := args[0]
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			found, err := s.Delete(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !found {
				return writeErr(cmd, errNotFound("application", id))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": true}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rec, ok, err := s.Get(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errNotFound("application", id))
			}
			return writeOut(cmd, app, map[string]any{"data": rec})
		},
	}
	return cmd
}
