package tui

import (
	"fmt"
	"strings"

	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/view"

	"github.com/charmbracelet/lipgloss"
)

const statsBarW = 28

func (m appModel) viewStats() string {
	stats := view.ComputeStats(m.apps)
	max := stats.MaxCount()

	head := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Pipeline · %d applications", stats.Total))

	lines := []string{head, ""}
	for _, st := range model.StatusOrder {
		count := stats.ByStatus[st]
		lines = append(lines, statsBar(st, count, max))
	}

	top := view.TopCompanies(m.apps, 5)
	if len(top) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("Most applied-to"))
		for i, c := range top {
			lines = append(lines, fmt.Sprintf("  %d. %-24s %d", i+1, c.Company, c.Count))
		}
	}

	return strings.Join(lines, "\n")
}

func statsBar(st model.Status, count, max int) string {
	filled := 0
	if max > 0 {
		filled = count * statsBarW / max
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := lipgloss.NewStyle().Foreground(statusColor(string(st))).
		Render(strings.Repeat("█", filled))
	rest := styleMuted().Render(strings.Repeat("░", statsBarW-filled))
	return fmt.Sprintf("%-10s %s%s %d", st.Label(), bar, rest, count)
}
