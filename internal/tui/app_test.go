package tui

import (
	"testing"

	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	if _, err := s.SeedDemo(); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	m, err := newAppModel(s, "test")
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	m.width = 120
	m.height = 40
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return am
}

func TestBoardColumns(t *testing.T) {
	m := newTestModel(t)

	if len(m.board) != len(model.StatusOrder) {
		t.Fatalf("expected %d columns; got %d", len(model.StatusOrder), len(m.board))
	}
	for i, st := range model.StatusOrder {
		if m.board[i].Status != st {
			t.Fatalf("column %d: want %s, got %s", i, st, m.board[i].Status)
		}
	}
	// Demo data: one applied, one interview, one offer, no rejected.
	counts := []int{1, 1, 1, 0}
	for i, want := range counts {
		if len(m.board[i].Apps) != want {
			t.Fatalf("column %s: want %d apps, got %d", m.board[i].Status, want, len(m.board[i].Apps))
		}
	}
}

func TestBoardNavigationClamps(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('h'))
	if m.selCol != 0 {
		t.Fatalf("left at edge must clamp; got col %d", m.selCol)
	}
	for i := 0; i < 10; i++ {
		m = update(t, m, keyRune('l'))
	}
	if m.selCol != len(model.StatusOrder)-1 {
		t.Fatalf("right must clamp to last column; got %d", m.selCol)
	}
	m = update(t, m, keyRune('j'))
	if m.selRow != 0 {
		t.Fatalf("down in empty/short column must clamp; got row %d", m.selRow)
	}
}

func TestMoveStatusForward(t *testing.T) {
	m := newTestModel(t)

	// Selection starts in the applied column (Atlassian).
	a, ok := m.selectedApp()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if a.Status != model.StatusApplied {
		t.Fatalf("expected selection in applied column; got %s", a.Status)
	}

	m = update(t, m, keyRune(']'))

	got, found, err := m.store.Get(a.ID)
	if err != nil || !found {
		t.Fatalf("Get after move: found=%v err=%v", found, err)
	}
	if got.Status != model.StatusInterview {
		t.Fatalf("expected interview after ]; got %s", got.Status)
	}
	// Selection follows the card into its new column.
	if sel := m.selectedID(); sel != a.ID {
		t.Fatalf("selection should follow the moved card; got %q", sel)
	}
}

func TestMoveStatusClampsAtEnds(t *testing.T) {
	m := newTestModel(t)

	a, _ := m.selectedApp()
	m = update(t, m, keyRune('['))
	got, _, _ := m.store.Get(a.ID)
	if got.Status != model.StatusApplied {
		t.Fatalf("[ at pipeline start must be a no-op; got %s", got.Status)
	}
}

func TestSearchFiltersBoard(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('/'))
	if !m.searching {
		t.Fatalf("expected search mode")
	}
	for _, r := range "canva" {
		m = update(t, m, keyRune(r))
	}

	total := 0
	for _, col := range m.board {
		total += len(col.Apps)
	}
	if total != 1 {
		t.Fatalf("expected only Canva on the board; got %d cards", total)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("esc should leave search mode")
	}
	total = 0
	for _, col := range m.board {
		total += len(col.Apps)
	}
	if total != 3 {
		t.Fatalf("esc should clear the query; got %d cards", total)
	}
}

func TestFormValidationBlocksSave(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	if m.modal != modalForm || m.form == nil {
		t.Fatalf("expected open form")
	}
	m.form.company.SetValue("X")
	m.form.role.SetValue("Engineer")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.modal != modalForm {
		t.Fatalf("invalid draft must keep the form open")
	}
	if m.form.errs["company"] == "" {
		t.Fatalf("expected inline company error; got %v", m.form.errs)
	}

	apps, _ := m.store.LoadApps()
	if len(apps) != 3 {
		t.Fatalf("invalid draft must not be persisted; got %d apps", len(apps))
	}
}

func TestFormSaveAddsApplication(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))
	m.form.company.SetValue("Stripe")
	m.form.role.SetValue("Platform Engineer")
	m.form.link.SetValue("https://stripe.com/jobs")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.modal != modalNone {
		t.Fatalf("expected form to close on save")
	}

	apps, _ := m.store.LoadApps()
	if len(apps) != 4 {
		t.Fatalf("expected 4 apps after save; got %d", len(apps))
	}
	if apps[0].Company != "Stripe" {
		t.Fatalf("new applications are prepended; got %#v", apps[0])
	}
	if apps[0].ID == "" || apps[0].CreatedAt == 0 {
		t.Fatalf("saved app missing identity/timestamps: %#v", apps[0])
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t)

	a, _ := m.selectedApp()
	m = update(t, m, keyRune('d'))
	if m.modal != modalConfirmDelete {
		t.Fatalf("expected delete confirm modal")
	}

	// Cancel first: focus defaults to Cancel, enter keeps the record.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal != modalNone {
		t.Fatalf("enter on cancel should close the modal")
	}
	if _, found, _ := m.store.Get(a.ID); !found {
		t.Fatalf("cancel must not delete")
	}

	// Now confirm via the y shortcut.
	m = update(t, m, keyRune('d'))
	m = update(t, m, keyRune('y'))
	if _, found, _ := m.store.Get(a.ID); found {
		t.Fatalf("y should confirm deletion")
	}
	apps, _ := m.store.LoadApps()
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps after delete; got %d", len(apps))
	}
}

func TestClearAllConfirm(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('C'))
	if m.modal != modalConfirmClear {
		t.Fatalf("expected clear confirm modal")
	}
	m = update(t, m, keyRune('y'))

	apps, _ := m.store.LoadApps()
	if len(apps) != 0 {
		t.Fatalf("expected empty collection; got %d", len(apps))
	}
}

func TestStatusFilterCycle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('f'))
	if m.statusFilter != string(model.StatusApplied) {
		t.Fatalf("first f should filter to applied; got %q", m.statusFilter)
	}
	total := 0
	for _, col := range m.board {
		total += len(col.Apps)
	}
	if total != 1 {
		t.Fatalf("applied filter should leave one card; got %d", total)
	}

	// Cycle through the remaining stages back to all.
	for i := 0; i < len(model.StatusOrder); i++ {
		m = update(t, m, keyRune('f'))
	}
	if m.statusFilter != "all" {
		t.Fatalf("cycle should wrap back to all; got %q", m.statusFilter)
	}
}

func TestResetControls(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('f'))
	m = update(t, m, keyRune('s'))
	m.query.SetValue("canva")
	m.rebuildBoard()

	m = update(t, m, keyRune('R'))
	if m.statusFilter != "all" || m.query.Value() != "" {
		t.Fatalf("R must clear filter and query; got filter=%q query=%q", m.statusFilter, m.query.Value())
	}
	if m.sort != m.prefs.DefaultSort {
		t.Fatalf("R must restore the preferred sort; got %s", m.sort)
	}
}

func TestFactoryResetFromSettings(t *testing.T) {
	m := newTestModel(t)
	if err := m.store.SavePrefs(model.Prefs{Density: model.DensityCompact, DefaultSort: model.SortCompany}); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	m.reloadFromDisk()

	m = update(t, m, keyRune(','))
	m = update(t, m, keyRune('F'))
	if m.modal != modalConfirmReset {
		t.Fatalf("expected factory reset confirm modal")
	}
	m = update(t, m, keyRune('y'))

	apps, _ := m.store.LoadApps()
	if len(apps) != 0 {
		t.Fatalf("reset must clear applications; got %d", len(apps))
	}
	prefs, _ := m.store.LoadPrefs()
	if prefs != model.DefaultPrefs() {
		t.Fatalf("reset must restore default preferences; got %#v", prefs)
	}
}

func TestStateRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.screen = screenStats

	st := m.savedState()
	if st.View != "stats" {
		t.Fatalf("saved view: %q", st.View)
	}

	m2 := newTestModel(t)
	m2.applySavedState(st)
	if m2.screen != screenStats {
		t.Fatalf("expected restored stats screen")
	}
}
