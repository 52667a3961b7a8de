package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/store"
	"jobtrack-cli/internal/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenBoard screen = iota
	screenDetail
	screenStats
	screenSettings
)

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalConfirmDelete
	modalConfirmClear
	modalConfirmReset
)

type reloadTickMsg struct{}
type flashExpireMsg struct{ seq int }

type appModel struct {
	store     store.Store
	workspace string

	width  int
	height int

	screen screen

	apps  []model.Application
	prefs model.Prefs

	query        textinput.Model
	searching    bool
	sort         model.SortMode
	statusFilter string

	board  []view.Column
	selCol int
	selRow int

	detailID string

	modal        modalKind
	form         *formState
	confirmFocus confirmModalFocus
	confirmForID string

	flashText string
	flashErr  bool
	flashSeq  int

	lastAppsModTime time.Time
}

func newAppModel(s store.Store, workspace string) (appModel, error) {
	apps, err := s.LoadApps()
	if err != nil {
		return appModel{}, err
	}
	prefs, err := s.LoadPrefs()
	if err != nil {
		return appModel{}, err
	}

	m := appModel{
		store:        s,
		workspace:    strings.TrimSpace(workspace),
		screen:       screenBoard,
		apps:         apps,
		prefs:        prefs,
		sort:         prefs.DefaultSort,
		statusFilter: view.StatusAll,
	}

	m.query = textinput.New()
	m.query.Placeholder = "Search company or role"
	m.query.CharLimit = 120
	m.query.Width = 32

	m.rebuildBoard()

	// Best-effort: restore the last screen/selection for this workspace.
	m.applySavedState(s.LoadTUIState())

	m.captureStoreModTimes()
	return m, nil
}

func (m *appModel) applySavedState(st *store.TUIState) {
	if st == nil {
		return
	}
	switch st.View {
	case "stats":
		m.screen = screenStats
	case "settings":
		m.screen = screenSettings
	}
	if st.SelectedColumn >= 0 && st.SelectedColumn < len(m.board) {
		m.selCol = st.SelectedColumn
	}
	if st.SelectedAppID != "" {
		m.selectApp(st.SelectedAppID)
	}
	m.clampSelection()
}

func (m appModel) savedState() *store.TUIState {
	name := "board"
	switch m.screen {
	case screenStats:
		name = "stats"
	case screenSettings:
		name = "settings"
	}
	return &store.TUIState{
		Version:        1,
		View:           name,
		SelectedColumn: m.selCol,
		SelectedAppID:  m.selectedID(),
	}
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reloadTickMsg:
		if m.storeChanged() {
			m.reloadFromDisk()
		}
		return m, tickReload()

	case flashExpireMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalForm:
		return m.updateForm(msg)
	case modalConfirmDelete, modalConfirmClear, modalConfirmReset:
		return m.updateConfirm(msg)
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		_ = m.store.SaveTUIState(m.savedState())
		return m, tea.Quit
	case "r":
		// Reload from disk (so running CLI commands in another terminal is reflected).
		m.reloadFromDisk()
		return m, nil
	}

	switch m.screen {
	case screenBoard:
		return m.updateBoard(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.query.Blur()
		return m, nil
	case "esc", "ctrl+g":
		m.searching = false
		m.query.Blur()
		m.query.SetValue("")
		m.rebuildBoard()
		return m, nil
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.rebuildBoard()
	return m, cmd
}

func (m appModel) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "i":
		m.screen = screenBoard
	}
	return m, nil
}

func (m appModel) View() string {
	header := m.renderHeader()

	var body string
	switch m.modal {
	case modalForm:
		return placeCentered(m.width, m.height, m.viewForm())
	case modalConfirmDelete:
		title := "Delete application"
		b := "This permanently removes the selected application."
		if a, ok := m.findApp(m.confirmForID); ok {
			b = fmt.Sprintf("Delete %s — %s? This cannot be undone.", a.Company, a.Role)
		}
		return placeCentered(m.width, m.height, renderConfirmModal(m.width, title, b, "Delete", "Cancel", m.confirmFocus))
	case modalConfirmClear:
		b := fmt.Sprintf("Delete all %d applications? Preferences are kept.", len(m.apps))
		return placeCentered(m.width, m.height, renderConfirmModal(m.width, "Clear all applications", b, "Clear", "Cancel", m.confirmFocus))
	case modalConfirmReset:
		b := "Delete all applications and restore default preferences?"
		return placeCentered(m.width, m.height, renderConfirmModal(m.width, "Factory reset", b, "Reset", "Cancel", m.confirmFocus))
	}

	switch m.screen {
	case screenBoard:
		body = m.viewBoard()
	case screenDetail:
		body = m.viewDetail()
	case screenStats:
		body = m.viewStats()
	case screenSettings:
		body = m.viewSettings()
	}

	return strings.Join([]string{header, body, m.renderFooter()}, "\n\n")
}

func (m appModel) renderHeader() string {
	ws := m.workspace
	if ws == "" {
		ws = "default"
	}
	title := lipgloss.NewStyle().Bold(true).Render("jobtrack")
	crumb := lipgloss.NewStyle().Foreground(colorChromeMutedFg).
		Render(fmt.Sprintf("  %s · %d applications", ws, len(m.apps)))

	filter := ""
	if m.statusFilter != view.StatusAll {
		filter = lipgloss.NewStyle().Foreground(colorAccent).Render("   filter: " + m.statusFilter)
	}

	search := ""
	if m.searching || strings.TrimSpace(m.query.Value()) != "" {
		search = "   " + m.query.View()
	}
	return title + crumb + filter + search
}

func (m appModel) renderFooter() string {
	if m.flashText != "" {
		st := lipgloss.NewStyle().Foreground(colorAccent)
		if m.flashErr {
			st = lipgloss.NewStyle().Foreground(colorFlashErrorFg)
		}
		return st.Render(m.flashText)
	}

	var help string
	switch m.screen {
	case screenBoard:
		help = "a: add  e: edit  enter: open  [/]: move  d: delete  /: search  f: filter  s: sort  R: reset  i: stats  ,: settings  q: quit"
	case screenDetail:
		help = "e: edit  [/]: move  d: delete  esc: back  q: quit"
	case screenStats:
		help = "esc: back  q: quit"
	case screenSettings:
		help = "d: density  s: default sort  t: theme  x: export json  c: export csv  C: clear  F: factory reset  esc: back  q: quit"
	}
	return styleMuted().Render(help)
}

func (m *appModel) flash(text string, isErr bool) tea.Cmd {
	m.flashText = text
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg { return flashExpireMsg{seq: seq} })
}

func (m *appModel) rebuildBoard() {
	controls := view.Controls{
		Query:  m.query.Value(),
		Status: m.statusFilter,
		Sort:   m.sort,
	}
	m.board = view.Group(view.Filter(m.apps, controls))
	m.clampSelection()
}

func (m *appModel) clampSelection() {
	if len(m.board) == 0 {
		m.selCol, m.selRow = 0, 0
		return
	}
	if m.selCol < 0 {
		m.selCol = 0
	}
	if m.selCol >= len(m.board) {
		m.selCol = len(m.board) - 1
	}
	rows := len(m.board[m.selCol].Apps)
	if m.selRow >= rows {
		m.selRow = rows - 1
	}
	if m.selRow < 0 {
		m.selRow = 0
	}
}

func (m appModel) selectedApp() (model.Application, bool) {
	if m.selCol < 0 || m.selCol >= len(m.board) {
		return model.Application{}, false
	}
	col := m.board[m.selCol]
	if m.selRow < 0 || m.selRow >= len(col.Apps) {
		return model.Application{}, false
	}
	return col.Apps[m.selRow], true
}

func (m appModel) selectedID() string {
	if a, ok := m.selectedApp(); ok {
		return a.ID
	}
	return ""
}

func (m *appModel) selectApp(id string) {
	for ci, col := range m.board {
		for ri, a := range col.Apps {
			if a.ID == id {
				m.selCol, m.selRow = ci, ri
				return
			}
		}
	}
}

func (m appModel) findApp(id string) (model.Application, bool) {
	for _, a := range m.apps {
		if a.ID == id {
			return a, true
		}
	}
	return model.Application{}, false
}

func (m *appModel) reloadFromDisk() {
	apps, err := m.store.LoadApps()
	if err != nil {
		return
	}
	prefs, err := m.store.LoadPrefs()
	if err != nil {
		return
	}
	keep := m.selectedID()
	m.apps = apps
	m.prefs = prefs
	m.rebuildBoard()
	if keep != "" {
		m.selectApp(keep)
	}
	m.captureStoreModTimes()
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m *appModel) captureStoreModTimes() {
	m.lastAppsModTime = storeModTime(m.store.Dir)
}

func (m *appModel) storeChanged() bool {
	return storeModTime(m.store.Dir).After(m.lastAppsModTime)
}

// storeModTime covers both backends: per-key JSON files and the sqlite db.
func storeModTime(dir string) time.Time {
	var latest time.Time
	for _, name := range []string{"apps.json", "prefs.json", "kv.sqlite"} {
		if mt := fileModTime(filepath.Join(dir, name)); mt.After(latest) {
			latest = mt
		}
	}
	return latest
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}
