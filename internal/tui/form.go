package tui

import (
	"strings"

	"jobtrack-cli/internal/model"
	"jobtrack-cli/internal/store"
	"jobtrack-cli/internal/validate"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Narrowest the form renders at: the modal body at its minimum width.
const minInputLineW = 26

// renderInputLine pins a text input's view to a single padded line of exactly
// w columns so the modal layout stays put while typing. Newlines from cursor
// or placeholder styling would otherwise wrap and jiggle the fields below.
func renderInputLine(w int, inputView string) string {
	if w < minInputLineW {
		w = minInputLineW
	}
	oneLine := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, inputView)

	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		" "+oneLine+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) <= w {
		return line
	}
	// Clip ANSI overflow and reset styling so the input background cannot bleed.
	return xansi.Cut(line, 0, w) + "\x1b[0m"
}

type formField int

const (
	fieldCompany formField = iota
	fieldRole
	fieldStatus
	fieldDate
	fieldLink
	fieldNotes
	fieldCount
)

type formState struct {
	editingID string // empty means a new application

	company textinput.Model
	role    textinput.Model
	date    textinput.Model
	link    textinput.Model
	notes   textarea.Model
	status  model.Status

	focus formField
	errs  map[string]string
}

func newFormState(app *model.Application) *formState {
	f := &formState{status: model.StatusApplied, errs: map[string]string{}}

	newInput := func(placeholder string, limit, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = width
		return in
	}
	f.company = newInput("Company", 120, 40)
	f.role = newInput("Role", 120, 40)
	f.date = newInput("YYYY-MM-DD (optional)", 10, 40)
	f.link = newInput("https://… (optional)", 500, 40)

	f.notes = textarea.New()
	f.notes.Placeholder = "Notes (markdown, optional)"
	f.notes.CharLimit = 0
	f.notes.SetWidth(56)
	f.notes.SetHeight(5)
	f.notes.ShowLineNumbers = false

	if app != nil {
		f.editingID = app.ID
		f.company.SetValue(app.Company)
		f.role.SetValue(app.Role)
		f.date.SetValue(app.AppliedDate)
		f.link.SetValue(app.Link)
		f.notes.SetValue(app.Notes)
		if app.Status.Valid() {
			f.status = app.Status
		}
	}

	f.focus = fieldCompany
	f.company.Focus()
	return f
}

func (f *formState) focusCmd() tea.Cmd { return textinput.Blink }

func (f *formState) draft() validate.Draft {
	return validate.Draft{
		Company:     f.company.Value(),
		Role:        f.role.Value(),
		Status:      string(f.status),
		AppliedDate: f.date.Value(),
		Link:        f.link.Value(),
		Notes:       f.notes.Value(),
	}
}

func (f *formState) setFocus(field formField) tea.Cmd {
	if field < 0 {
		field = fieldCount - 1
	}
	if field >= fieldCount {
		field = 0
	}
	f.focus = field

	f.company.Blur()
	f.role.Blur()
	f.date.Blur()
	f.link.Blur()
	f.notes.Blur()

	switch field {
	case fieldCompany:
		return f.company.Focus()
	case fieldRole:
		return f.role.Focus()
	case fieldDate:
		return f.date.Focus()
	case fieldLink:
		return f.link.Focus()
	case fieldNotes:
		return f.notes.Focus()
	}
	return nil
}

func (f *formState) cycleStatus(delta int) {
	for i, st := range model.StatusOrder {
		if st == f.status {
			n := (i + delta + len(model.StatusOrder)) % len(model.StatusOrder)
			f.status = model.StatusOrder[n]
			return
		}
	}
	f.status = model.StatusOrder[0]
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		m.modal = modalNone
		m.form = nil
		return m, nil
	case "ctrl+s":
		return m.saveForm()
	case "tab":
		return m, f.setFocus(f.focus + 1)
	case "shift+tab":
		return m, f.setFocus(f.focus - 1)
	case "enter":
		// Enter advances through single-line fields; in notes it inserts a
		// newline, so saving from there is ctrl+s.
		if f.focus != fieldNotes {
			if f.focus == fieldLink {
				return m.saveForm()
			}
			return m, f.setFocus(f.focus + 1)
		}
	case "up":
		if f.focus != fieldNotes {
			return m, f.setFocus(f.focus - 1)
		}
	case "down":
		if f.focus != fieldNotes {
			return m, f.setFocus(f.focus + 1)
		}
	}

	if f.focus == fieldStatus {
		switch msg.String() {
		case "left", "h":
			f.cycleStatus(-1)
			return m, nil
		case "right", "l", " ":
			f.cycleStatus(+1)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldCompany:
		f.company, cmd = f.company.Update(msg)
	case fieldRole:
		f.role, cmd = f.role.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldLink:
		f.link, cmd = f.link.Update(msg)
	case fieldNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return m, cmd
}

func (m appModel) saveForm() (tea.Model, tea.Cmd) {
	f := m.form
	d := f.draft()
	if errs := validate.Check(d); len(errs) > 0 {
		f.errs = errs
		return m, nil
	}

	var saved model.Application
	if f.editingID == "" {
		now := store.NowMillis()
		rec := model.Application{ID: store.NewID(), CreatedAt: now, UpdatedAt: now}
		d.Apply(&rec)
		if err := m.store.Add(rec); err != nil {
			return m, m.flash("Save failed: "+err.Error(), true)
		}
		saved = rec
	} else {
		rec, found, err := m.store.Update(f.editingID, func(a *model.Application) { d.Apply(a) })
		if err != nil {
			return m, m.flash("Save failed: "+err.Error(), true)
		}
		if !found {
			m.modal = modalNone
			m.form = nil
			m.reloadFromDisk()
			return m, m.flash("Application no longer exists", true)
		}
		saved = rec
	}

	m.modal = modalNone
	m.form = nil
	m.reloadFromDisk()
	m.selectApp(saved.ID)
	return m, m.flash("Saved "+saved.Company, false)
}

func (m appModel) viewForm() string {
	f := m.form
	title := "Add application"
	if f.editingID != "" {
		title = "Edit application"
	}

	bodyW := modalBodyWidth(m.width)
	label := func(s string, active bool) string {
		st := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
		if active {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(s)
	}
	errLine := func(field string) string {
		if msg := f.errs[field]; msg != "" {
			return lipgloss.NewStyle().Foreground(colorFlashErrorFg).Render(msg)
		}
		return ""
	}

	statusLine := "◂ " + f.status.Label() + " ▸"
	if f.focus == fieldStatus {
		statusLine = lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true).
			Render(statusLine)
	}

	rows := []string{
		label("Company", f.focus == fieldCompany),
		renderInputLine(bodyW, f.company.View()),
		errLine("company"),
		label("Role", f.focus == fieldRole),
		renderInputLine(bodyW, f.role.View()),
		errLine("role"),
		label("Status", f.focus == fieldStatus),
		statusLine,
		errLine("status"),
		label("Applied date", f.focus == fieldDate),
		renderInputLine(bodyW, f.date.View()),
		errLine("appliedDate"),
		label("Link", f.focus == fieldLink),
		renderInputLine(bodyW, f.link.View()),
		errLine("link"),
		label("Notes", f.focus == fieldNotes),
		f.notes.View(),
		"",
		styleMuted().Render("tab: next field   ctrl+s: save   esc: cancel"),
	}

	// Drop empty error rows to keep the modal tight.
	content := make([]string, 0, len(rows))
	for _, r := range rows {
		if r == "" && len(content) > 0 && content[len(content)-1] == "" {
			continue
		}
		content = append(content, r)
	}
	return renderModalBox(m.width, title, strings.Join(content, "\n"))
}
