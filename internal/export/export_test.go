package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"jobtrack-cli/internal/model"
)

func TestJSON(t *testing.T) {
	apps := []model.Application{
		{ID: "1", Company: "Canva", Role: "Frontend Developer", Status: model.StatusInterview, CreatedAt: 100, UpdatedAt: 100},
	}
	prefs := model.Prefs{Density: model.DensityCompact, DefaultSort: model.SortCompany}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	raw, err := JSON(apps, prefs, now)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if snap.ExportedAt != "2026-08-30T12:00:00Z" {
		t.Fatalf("exportedAt: got %q", snap.ExportedAt)
	}
	if len(snap.Apps) != 1 || snap.Apps[0].ID != "1" {
		t.Fatalf("apps: %#v", snap.Apps)
	}
	if snap.Prefs != prefs {
		t.Fatalf("prefs: %#v", snap.Prefs)
	}
}

func TestJSON_EmptyCollection(t *testing.T) {
	raw, err := JSON(nil, model.DefaultPrefs(), time.Unix(0, 0))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(raw), `"apps": []`) {
		t.Fatalf("empty collection must export as [], not null:\n%s", raw)
	}
}

func TestCSV(t *testing.T) {
	apps := []model.Application{
		{
			ID: "1", Company: "Canva", Role: "Frontend Developer",
			Status: model.StatusApplied, AppliedDate: "2026-08-28",
			Link: "https://example.com", Notes: "simple",
			CreatedAt: 100, UpdatedAt: 200,
		},
	}
	got := CSV(apps)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row; got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "company,role,status,appliedDate,link,notes,createdAt,updatedAt" {
		t.Fatalf("header must be unquoted: %s", lines[0])
	}
	if lines[1] != `"Canva","Frontend Developer","applied","2026-08-28","https://example.com","simple","100","200"` {
		t.Fatalf("row: %s", lines[1])
	}
}

func TestCSV_QuotesAndCommas(t *testing.T) {
	apps := []model.Application{
		{Company: `Say "hi"`, Role: "a, b", Status: model.StatusOffer, Notes: "line"},
	}
	got := CSV(apps)
	row := strings.Split(got, "\n")[1]
	if !strings.Contains(row, `"Say ""hi"""`) {
		t.Fatalf("embedded quotes must be doubled: %s", row)
	}
	if !strings.Contains(row, `"a, b"`) {
		t.Fatalf("comma fields must stay quoted: %s", row)
	}
}

func TestCSV_EmptyCollection(t *testing.T) {
	got := CSV(nil)
	if got != "company,role,status,appliedDate,link,notes,createdAt,updatedAt" {
		t.Fatalf("empty export should be the bare header only:\n%s", got)
	}
}
