package tui

import (
	"jobtrack-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s store.Store) error {
	return RunWithWorkspace(s, "")
}

func RunWithWorkspace(s store.Store, workspace string) error {
	applyColorProfilePreference()
	applyThemePreference()
	m, err := newAppModel(s, workspace)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
