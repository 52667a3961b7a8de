package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"jobtrack-cli/internal/export"
	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", ",":
		m.screen = screenBoard
		return m, nil
	case "d":
		if m.prefs.Density == model.DensityComfort {
			m.prefs.Density = model.DensityCompact
		} else {
			m.prefs.Density = model.DensityComfort
		}
		return m.savePrefs()
	case "s":
		m.prefs.DefaultSort = nextSortMode(m.prefs.DefaultSort)
		m.sort = m.prefs.DefaultSort
		m.rebuildBoard()
		return m.savePrefs()
	case "t":
		return m.cycleTheme()
	case "x":
		return m.exportTo("json")
	case "c":
		return m.exportTo("csv")
	case "C":
		if len(m.apps) > 0 {
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmClear
		}
		return m, nil
	case "F":
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmReset
		return m, nil
	}
	return m, nil
}

// exportTo writes a snapshot into the current working directory, the closest
// analogue to a browser download.
func (m appModel) exportTo(kind string) (tea.Model, tea.Cmd) {
	var payload []byte
	var err error
	switch kind {
	case "json":
		payload, err = export.JSON(m.apps, m.prefs, time.Now())
	case "csv":
		payload = []byte(export.CSV(m.apps))
	}
	if err != nil {
		return m, m.flash("Export failed: "+err.Error(), true)
	}
	name := "jobtrack-export-" + time.Now().Format("20060102-150405") + "." + kind
	if err := os.WriteFile(name, append(payload, '\n'), 0o644); err != nil {
		return m, m.flash("Export failed: "+err.Error(), true)
	}
	return m, m.flash("Exported "+name, false)
}

func (m appModel) savePrefs() (tea.Model, tea.Cmd) {
	if err := m.store.SavePrefs(m.prefs); err != nil {
		return m, m.flash("Save failed: "+err.Error(), true)
	}
	return m, m.flash("Preferences saved", false)
}

// cycleTheme rotates auto -> light -> dark and persists the choice in the
// global config so it applies to every workspace.
func (m appModel) cycleTheme() (tea.Model, tea.Cmd) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return m, m.flash("Config load failed: "+err.Error(), true)
	}
	if cfg.TUI == nil {
		cfg.TUI = &store.TUIConfig{}
	}
	switch cfg.TUI.Theme {
	case "light":
		cfg.TUI.Theme = "dark"
	case "dark":
		cfg.TUI.Theme = "auto"
	default:
		cfg.TUI.Theme = "light"
	}
	if err := store.SaveConfig(cfg); err != nil {
		return m, m.flash("Config save failed: "+err.Error(), true)
	}
	applyThemePreference()
	return m, m.flash("Theme: "+cfg.TUI.Theme, false)
}

func (m appModel) viewSettings() string {
	theme := "auto"
	if cfg, err := store.LoadConfig(); err == nil && cfg.TUI != nil && cfg.TUI.Theme != "" {
		theme = cfg.TUI.Theme
	}

	head := lipgloss.NewStyle().Bold(true).Render("Settings")
	rows := []string{
		head,
		"",
		settingRow("d", "Density", string(m.prefs.Density)),
		settingRow("s", "Default sort", string(m.prefs.DefaultSort)),
		settingRow("t", "Theme", theme),
		"",
		settingRow("x", "Export JSON", "snapshot with preferences"),
		settingRow("c", "Export CSV", "applications only"),
		settingRow("C", "Clear", fmt.Sprintf("%d applications", len(m.apps))),
		settingRow("F", "Factory reset", "applications and preferences"),
		"",
		styleMuted().Render("Density and sort are per-workspace; theme is global."),
	}
	return strings.Join(rows, "\n")
}

func settingRow(key, name, value string) string {
	k := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(key)
	v := lipgloss.NewStyle().Bold(true).Render(value)
	return fmt.Sprintf("  %s  %-14s %s", k, name, v)
}
