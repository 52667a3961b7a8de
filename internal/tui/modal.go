package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const modalMaxW = 72

func modalWidth(termW int) int {
	w := termW - 8
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < 30 {
		w = 30
	}
	return w
}

// modalBodyWidth is the usable content width inside a modal box (border + padding).
func modalBodyWidth(termW int) int {
	return modalWidth(termW) - 4
}

func renderModalBox(termW int, title string, content string) string {
	w := modalWidth(termW)
	bodyW := w - 4

	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW).
		Foreground(colorSurfaceFg).
		Padding(0, 1).
		Render(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Background(colorSurfaceBg).
		Render(strings.Join([]string{header, "", body}, "\n"))

	return box
}

func placeCentered(termW, termH int, content string) string {
	if termW <= 0 || termH <= 0 {
		return content
	}
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, content)
}
