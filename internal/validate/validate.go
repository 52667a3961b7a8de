// Package validate checks application drafts before they are saved. Validation
// is shared by the CLI commands and the TUI form so both surfaces reject the
// same inputs with the same messages.
package validate

import (
	"net/url"
	"strings"
	"time"

	"jobtrack-cli/internal/model"
)

// Draft holds raw user input for a new or edited application.
type Draft struct {
	Company     string
	Role        string
	Status      string
	AppliedDate string
	Link        string
	Notes       string
}

// Apply copies the draft's fields onto app. Validate the draft first; Apply
// itself only trims.
func (d Draft) Apply(app *model.Application) {
	app.Company = strings.TrimSpace(d.Company)
	app.Role = strings.TrimSpace(d.Role)
	app.Status = model.Status(strings.TrimSpace(strings.ToLower(d.Status)))
	app.AppliedDate = strings.TrimSpace(d.AppliedDate)
	app.Link = strings.TrimSpace(d.Link)
	app.Notes = strings.TrimSpace(d.Notes)
}

// Check validates a draft and returns one message per failed field, keyed by
// field name (company, role, status, appliedDate, link). An empty map means
// the draft is saveable.
func Check(d Draft) map[string]string {
	errs := map[string]string{}

	if len(strings.TrimSpace(d.Company)) < 2 {
		errs["company"] = "Company must be at least 2 characters."
	}
	if len(strings.TrimSpace(d.Role)) < 2 {
		errs["role"] = "Role must be at least 2 characters."
	}

	status := strings.TrimSpace(d.Status)
	if status == "" {
		errs["status"] = "Status is required."
	} else if _, err := model.ParseStatus(status); err != nil {
		errs["status"] = "Status must be one of: applied, interview, offer, rejected."
	}

	if date := strings.TrimSpace(d.AppliedDate); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			errs["appliedDate"] = "Applied date must look like YYYY-MM-DD."
		}
	}

	if link := strings.TrimSpace(d.Link); link != "" && !isAbsoluteURL(link) {
		errs["link"] = "Link must be a valid URL (https://...)."
	}

	return errs
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
