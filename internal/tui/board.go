package tui

import (
	"fmt"
	"strings"
	"time"

	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const boardGapW = 1

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.selCol--
		m.selRow = 0
		m.clampSelection()
	case "right", "l":
		m.selCol++
		m.selRow = 0
		m.clampSelection()
	case "up", "k":
		m.selRow--
		m.clampSelection()
	case "down", "j":
		m.selRow++
		m.clampSelection()
	case "enter":
		if a, ok := m.selectedApp(); ok {
			m.detailID = a.ID
			m.screen = screenDetail
		}
	case "a":
		m.form = newFormState(nil)
		m.modal = modalForm
		return m, m.form.focusCmd()
	case "e":
		if a, ok := m.selectedApp(); ok {
			m.form = newFormState(&a)
			m.modal = modalForm
			return m, m.form.focusCmd()
		}
	case "d":
		if a, ok := m.selectedApp(); ok {
			m.confirmForID = a.ID
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmDelete
		}
	case "C":
		if len(m.apps) > 0 {
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmClear
		}
	case "[":
		return m.moveSelectedStatus(-1)
	case "]":
		return m.moveSelectedStatus(+1)
	case "/":
		m.searching = true
		return m, m.query.Focus()
	case "s":
		m.sort = nextSortMode(m.sort)
		m.rebuildBoard()
		return m, m.flash("Sort: "+string(m.sort), false)
	case "f":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.rebuildBoard()
		return m, m.flash("Filter: "+m.statusFilter, false)
	case "R":
		m.query.SetValue("")
		m.sort = m.prefs.DefaultSort
		m.statusFilter = view.StatusAll
		m.rebuildBoard()
		return m, m.flash("Controls reset", false)
	case "i":
		m.screen = screenStats
	case ",":
		m.screen = screenSettings
	}
	return m, nil
}

// nextStatusFilter cycles all -> applied -> interview -> offer -> rejected -> all.
func nextStatusFilter(cur string) string {
	if cur == view.StatusAll {
		return string(model.StatusOrder[0])
	}
	for i, st := range model.StatusOrder {
		if string(st) == cur {
			if i == len(model.StatusOrder)-1 {
				return view.StatusAll
			}
			return string(model.StatusOrder[i+1])
		}
	}
	return view.StatusAll
}

func nextSortMode(s model.SortMode) model.SortMode {
	order := []model.SortMode{model.SortNewest, model.SortOldest, model.SortCompany, model.SortStatus}
	for i, v := range order {
		if v == s {
			return order[(i+1)%len(order)]
		}
	}
	return model.SortNewest
}

// moveSelectedStatus shifts the selected application one step along the
// pipeline and keeps it selected in its new column.
func (m appModel) moveSelectedStatus(delta int) (tea.Model, tea.Cmd) {
	a, ok := m.selectedApp()
	if !ok {
		return m, nil
	}
	idx := -1
	for i, st := range model.StatusOrder {
		if st == a.Status {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(model.StatusOrder) {
		return m, nil
	}
	target := model.StatusOrder[next]

	updated, found, err := m.store.Update(a.ID, func(app *model.Application) { app.Status = target })
	if err != nil {
		return m, m.flash("Save failed: "+err.Error(), true)
	}
	if !found {
		m.reloadFromDisk()
		return m, m.flash("Application no longer exists", true)
	}
	m.reloadFromDisk()
	m.selectApp(updated.ID)
	return m, m.flash("Moved to "+target.Label(), false)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "esc", "ctrl+g", "n":
		m.modal = modalNone
		m.confirmForID = ""
		return m, nil
	case "y":
		return m.applyConfirm()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.applyConfirm()
		}
		m.modal = modalNone
		m.confirmForID = ""
		return m, nil
	}
	return m, nil
}

func (m appModel) applyConfirm() (tea.Model, tea.Cmd) {
	kind := m.modal
	m.modal = modalNone

	switch kind {
	case modalConfirmDelete:
		id := m.confirmForID
		m.confirmForID = ""
		found, err := m.store.Delete(id)
		if err != nil {
			return m, m.flash("Delete failed: "+err.Error(), true)
		}
		m.reloadFromDisk()
		if m.screen == screenDetail {
			m.screen = screenBoard
		}
		if !found {
			return m, m.flash("Application no longer exists", true)
		}
		return m, m.flash("Deleted", false)
	case modalConfirmClear:
		if err := m.store.ClearApps(); err != nil {
			return m, m.flash("Clear failed: "+err.Error(), true)
		}
		m.reloadFromDisk()
		return m, m.flash("All applications deleted", false)
	case modalConfirmReset:
		if err := m.store.Reset(); err != nil {
			return m, m.flash("Reset failed: "+err.Error(), true)
		}
		m.reloadFromDisk()
		m.sort = m.prefs.DefaultSort
		m.statusFilter = view.StatusAll
		m.rebuildBoard()
		return m, m.flash("Factory reset complete", false)
	}
	return m, nil
}

func (m appModel) viewBoard() string {
	if m.width <= 0 {
		return ""
	}
	if len(m.apps) == 0 {
		return styleMuted().Render("No applications yet. Press a to add one, or run `jobtrack seed` for demo data.")
	}

	cols := len(m.board)
	colW := (m.width - (cols-1)*boardGapW) / cols
	if colW < 16 {
		colW = 16
	}
	colH := m.height - 6
	if colH < 8 {
		colH = 8
	}

	rendered := make([]string, 0, cols)
	for ci, col := range m.board {
		rendered = append(rendered, m.renderColumn(col, ci == m.selCol, colW, colH))
	}
	gap := strings.Repeat(" ", boardGapW)
	joined := rendered[0]
	for _, r := range rendered[1:] {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, joined, gap, r)
	}
	return joined
}

func (m appModel) renderColumn(col view.Column, active bool, w, h int) string {
	headStyle := lipgloss.NewStyle().Bold(true).Foreground(statusColor(string(col.Status)))
	if active {
		headStyle = headStyle.Underline(true)
	}
	head := headStyle.Render(fmt.Sprintf("%s %d", col.Status.Label(), len(col.Apps)))

	lines := []string{head, ""}
	for ri, a := range col.Apps {
		selected := active && ri == m.selRow
		lines = append(lines, m.renderCard(a, selected, w))
	}
	if len(col.Apps) == 0 {
		lines = append(lines, styleMuted().Render("—"))
	}

	return normalizePane(strings.Join(lines, "\n"), w, h)
}

func (m appModel) renderCard(a model.Application, selected bool, w int) string {
	if m.prefs.Density == model.DensityCompact {
		line := a.Company + " · " + a.Role
		st := lipgloss.NewStyle()
		if selected {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		return st.Render(line)
	}

	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}
	company := lipgloss.NewStyle().Bold(true).Render(a.Company)
	role := a.Role
	meta := styleMuted().Render(cardMeta(a))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(w - 2).
		Padding(0, 1).
		Render(strings.Join([]string{company, role, meta}, "\n"))
	return card
}

func cardMeta(a model.Application) string {
	parts := []string{relativeAge(a.CreatedAt)}
	if a.Link != "" {
		parts = append(parts, "link")
	}
	if strings.TrimSpace(a.Notes) != "" {
		parts = append(parts, "notes")
	}
	return strings.Join(parts, " · ")
}

func relativeAge(unixMillis int64) string {
	if unixMillis <= 0 {
		return ""
	}
	d := time.Since(time.UnixMilli(unixMillis))
	switch {
	case d < time.Hour:
		return "just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
