package store

import (
	"reflect"
	"testing"

	"jobtrack-cli/internal/model"
)

func testApp(id, company string, status model.Status) model.Application {
	now := NowMillis()
	return model.Application{
		ID:        id,
		Company:   company,
		Role:      "Engineer",
		Status:    status,
		CreatedAt: now - 1000,
		UpdatedAt: now - 1000,
	}
}

func TestApps_SaveLoad_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	// Missing store => empty collection, no error.
	apps, err := s.LoadApps()
	if err != nil {
		t.Fatalf("LoadApps: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected empty collection; got %d", len(apps))
	}

	want := []model.Application{
		testApp("a", "Canva", model.StatusInterview),
		testApp("b", "Atlassian", model.StatusApplied),
	}
	if err := s.SaveApps(want); err != nil {
		t.Fatalf("SaveApps: %v", err)
	}
	got, err := s.LoadApps()
	if err != nil {
		t.Fatalf("LoadApps (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestAddGetUpdateDelete(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	a := testApp("a", "Canva", model.StatusApplied)
	if err := s.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	b := testApp("b", "Shopify", model.StatusOffer)
	if err := s.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Add prepends.
	apps, _ := s.LoadApps()
	if len(apps) != 2 || apps[0].ID != "b" {
		t.Fatalf("expected newest-first storage order; got %#v", apps)
	}

	got, ok, err := s.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get a: ok=%v err=%v", ok, err)
	}
	if got.Company != "Canva" {
		t.Fatalf("unexpected record: %#v", got)
	}

	upd, ok, err := s.Update("a", func(app *model.Application) {
		app.Status = model.StatusInterview
		app.ID = "hijack" // must not stick
	})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	if upd.ID != "a" {
		t.Fatalf("id must be immutable; got %q", upd.ID)
	}
	if upd.Status != model.StatusInterview {
		t.Fatalf("status not updated: %#v", upd)
	}
	if upd.UpdatedAt < upd.CreatedAt {
		t.Fatalf("updatedAt must not precede createdAt: %#v", upd)
	}
	if upd.UpdatedAt <= a.UpdatedAt {
		t.Fatalf("updatedAt not refreshed: %d <= %d", upd.UpdatedAt, a.UpdatedAt)
	}

	if _, ok, _ := s.Update("nope", func(*model.Application) {}); ok {
		t.Fatalf("expected Update of unknown id to report not found")
	}

	found, err := s.Delete("a")
	if err != nil || !found {
		t.Fatalf("Delete: found=%v err=%v", found, err)
	}
	if found, _ := s.Delete("a"); found {
		t.Fatalf("expected second delete to report not found")
	}
	apps, _ = s.LoadApps()
	if len(apps) != 1 || apps[0].ID != "b" {
		t.Fatalf("unexpected collection after delete: %#v", apps)
	}
}

func TestPrefs_DefaultsAndRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	prefs, err := s.LoadPrefs()
	if err != nil {
		t.Fatalf("LoadPrefs: %v", err)
	}
	if !reflect.DeepEqual(prefs, model.DefaultPrefs()) {
		t.Fatalf("expected defaults; got %#v", prefs)
	}

	want := model.Prefs{Density: model.DensityCompact, DefaultSort: model.SortCompany}
	if err := s.SavePrefs(want); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	got, err := s.LoadPrefs()
	if err != nil {
		t.Fatalf("LoadPrefs (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}

	// Unknown values degrade to defaults on load.
	if err := s.SavePrefs(model.Prefs{Density: "roomy", DefaultSort: "zorted"}); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	got, _ = s.LoadPrefs()
	if !reflect.DeepEqual(got, model.DefaultPrefs()) {
		t.Fatalf("expected normalized defaults; got %#v", got)
	}
}

func TestClearAndReset(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	if _, err := s.SeedDemo(); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	custom := model.Prefs{Density: model.DensityCompact, DefaultSort: model.SortOldest}
	if err := s.SavePrefs(custom); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}

	// Clear removes apps, keeps prefs.
	if err := s.ClearApps(); err != nil {
		t.Fatalf("ClearApps: %v", err)
	}
	apps, _ := s.LoadApps()
	if len(apps) != 0 {
		t.Fatalf("expected no apps after clear; got %d", len(apps))
	}
	prefs, _ := s.LoadPrefs()
	if !reflect.DeepEqual(prefs, custom) {
		t.Fatalf("clear must keep prefs; got %#v", prefs)
	}

	// Reset removes both.
	if _, err := s.SeedDemo(); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	apps, _ = s.LoadApps()
	if len(apps) != 0 {
		t.Fatalf("expected no apps after reset; got %d", len(apps))
	}
	prefs, _ = s.LoadPrefs()
	if !reflect.DeepEqual(prefs, model.DefaultPrefs()) {
		t.Fatalf("expected default prefs after reset; got %#v", prefs)
	}
}

func TestSeedDemo(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	demo, err := s.SeedDemo()
	if err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	if len(demo) != 3 {
		t.Fatalf("expected 3 demo records; got %d", len(demo))
	}
	seen := map[string]bool{}
	for _, a := range demo {
		if a.ID == "" || seen[a.ID] {
			t.Fatalf("demo ids must be unique and non-empty: %#v", demo)
		}
		seen[a.ID] = true
		if a.UpdatedAt < a.CreatedAt {
			t.Fatalf("demo record violates timestamp invariant: %#v", a)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}

func TestDoctor(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.SaveApps([]model.Application{
		testApp("a", "Canva", model.StatusApplied),
		testApp("a", "Dup", model.StatusOffer),
		{ID: "b", Company: "X", Role: "Y", Status: "limbo", CreatedAt: 100, UpdatedAt: 50},
	}); err != nil {
		t.Fatalf("SaveApps: %v", err)
	}

	rep, err := s.Doctor()
	if err != nil {
		t.Fatalf("Doctor: %v", err)
	}
	if rep.AppCount != 3 {
		t.Fatalf("expected 3 apps; got %d", rep.AppCount)
	}
	if len(rep.Problems) != 3 {
		t.Fatalf("expected 3 problems (dup id, bad status, bad timestamps); got %#v", rep.Problems)
	}
}
