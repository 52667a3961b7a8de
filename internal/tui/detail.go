package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.screen = screenBoard
	case "e":
		if a, ok := m.findApp(m.detailID); ok {
			m.form = newFormState(&a)
			m.modal = modalForm
			return m, m.form.focusCmd()
		}
	case "d":
		if _, ok := m.findApp(m.detailID); ok {
			m.confirmForID = m.detailID
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmDelete
		}
	case "[":
		m.selectApp(m.detailID)
		return m.moveSelectedStatus(-1)
	case "]":
		m.selectApp(m.detailID)
		return m.moveSelectedStatus(+1)
	}
	return m, nil
}

func (m appModel) viewDetail() string {
	a, ok := m.findApp(m.detailID)
	if !ok {
		return styleMuted().Render("Application no longer exists.")
	}

	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 96 {
		w = 96
	}

	title := lipgloss.NewStyle().Bold(true).Render(a.Company)
	role := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Render(a.Role)
	status := lipgloss.NewStyle().Bold(true).Foreground(statusColor(string(a.Status))).Render(a.Status.Label())

	meta := []string{
		fmt.Sprintf("Created   %s", formatMillis(a.CreatedAt)),
		fmt.Sprintf("Updated   %s", formatMillis(a.UpdatedAt)),
	}
	if a.AppliedDate != "" {
		meta = append(meta, "Applied   "+a.AppliedDate)
	}
	if a.Link != "" {
		meta = append(meta, "Link      "+a.Link)
	}

	sections := []string{
		title + "  " + status,
		role,
		"",
		styleMuted().Render(strings.Join(meta, "\n")),
	}
	if strings.TrimSpace(a.Notes) != "" {
		sections = append(sections, "", renderMarkdown(a.Notes, w))
	}

	return strings.Join(sections, "\n")
}

func formatMillis(unixMillis int64) string {
	if unixMillis <= 0 {
		return "-"
	}
	return time.UnixMilli(unixMillis).Local().Format("2006-01-02 15:04")
}
