// Package export renders the collection into portable formats for backup and
// spreadsheet use.
package export

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"jobtrack-cli/internal/model"
)

// Snapshot is the JSON export payload: the full collection plus preferences,
// stamped with the export time. Importing tools can rely on exportedAt being
// RFC 3339 UTC.
type Snapshot struct {
	ExportedAt string              `json:"exportedAt"`
	Apps       []model.Application `json:"apps"`
	Prefs      model.Prefs         `json:"prefs"`
}

// JSON renders a pretty-printed backup of apps and prefs, stamped with now.
func JSON(apps []model.Application, prefs model.Prefs, now time.Time) ([]byte, error) {
	if apps == nil {
		apps = []model.Application{}
	}
	snap := Snapshot{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Apps:       apps,
		Prefs:      prefs,
	}
	return json.MarshalIndent(snap, "", "  ")
}

var csvHeader = []string{"company", "role", "status", "appliedDate", "link", "notes", "createdAt", "updatedAt"}

// CSV renders the collection as comma-separated rows with a bare header line.
// Every data field is double-quoted unconditionally and embedded quotes are
// doubled, so notes with commas or newlines survive round-trips through
// spreadsheet tools.
func CSV(apps []model.Application) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')
	for _, a := range apps {
		writeRow(&b, []string{
			a.Company,
			a.Role,
			string(a.Status),
			a.AppliedDate,
			a.Link,
			a.Notes,
			strconv.FormatInt(a.CreatedAt, 10),
			strconv.FormatInt(a.UpdatedAt, 10),
		})
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
