package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
)

const (
	entryFieldTitle = iota
	entryFieldDetails
	entryFieldDate
	entryFieldCategory
	entryFieldCount
)

// EntryFormModel collects the fields for a new daily entry. Categories
// are picked by cycling through the known ones.
type EntryFormModel struct {
	title      textinput.Model
	details    textinput.Model
	date       textinput.Model
	categories []models.Category
	category   int
	focus      int
	errMsg     string
}

func newEntryForm(today string, categories []models.Category) EntryFormModel {
	title := textinput.New()
	title.Placeholder = "What did you do?"
	title.CharLimit = config.MaxTitleLength
	title.Width = 50
	title.Focus()

	details := textinput.New()
	details.Placeholder = "Details (optional)"
	details.CharLimit = config.MaxDetailsLength
	details.Width = 50

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = len(config.DateFormat)
	date.Width = config.DateInputWidth
	date.SetValue(today)

	return EntryFormModel{
		title:      title,
		details:    details,
		date:       date,
		categories: categories,
	}
}

func (f EntryFormModel) categoryID() string {
	if len(f.categories) == 0 {
		return ""
	}
	return f.categories[f.category].ID
}

func (f *EntryFormModel) nextField(delta int) {
	f.focus = (f.focus + delta + entryFieldCount) % entryFieldCount
	f.title.Blur()
	f.details.Blur()
	f.date.Blur()
	switch f.focus {
	case entryFieldTitle:
		f.title.Focus()
	case entryFieldDetails:
		f.details.Focus()
	case entryFieldDate:
		f.date.Focus()
	}
}

func (f *EntryFormModel) cycleCategory(delta int) {
	if len(f.categories) == 0 {
		return
	}
	n := len(f.categories)
	f.category = (f.category + delta + n) % n
}

func (m MainModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = StateSprintMenu
			return m, nil
		case "enter":
			return m.submitEntryForm()
		case "tab", "down":
			m.entryForm.nextField(1)
			return m, nil
		case "shift+tab", "up":
			m.entryForm.nextField(-1)
			return m, nil
		case "left", "right", " ":
			if m.entryForm.focus == entryFieldCategory {
				delta := 1
				if keyMsg.String() == "left" {
					delta = -1
				}
				m.entryForm.cycleCategory(delta)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.entryForm.focus {
	case entryFieldTitle:
		m.entryForm.title, cmd = m.entryForm.title.Update(msg)
	case entryFieldDetails:
		m.entryForm.details, cmd = m.entryForm.details.Update(msg)
	case entryFieldDate:
		m.entryForm.date, cmd = m.entryForm.date.Update(msg)
	}
	return m, cmd
}

// submitEntryForm logs the entry against the open sprint and returns to
// its menu with a fresh entry list.
func (m MainModel) submitEntryForm() (tea.Model, tea.Cmd) {
	entry, err := m.eng.AddEntry(m.ctx, engine.EntryInput{
		SprintID:   m.sprint.ID,
		Date:       m.entryForm.date.Value(),
		CategoryID: m.entryForm.categoryID(),
		Title:      m.entryForm.title.Value(),
		Details:    m.entryForm.details.Value(),
	})
	if err != nil {
		var verr engine.ValidationError
		if errors.As(err, &verr) {
			m.entryForm.errMsg = verr.Msg
			return m, nil
		}
		m.err = err
		return m, nil
	}
	entries, err := m.eng.EntriesForSprint(m.ctx, m.sprint.ID)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.entries = entries
	m.setStatus(fmt.Sprintf("Logged %q on %s", entry.Title, entry.Date))
	m.state = StateSprintMenu
	return m, nil
}

func (m MainModel) viewEntryForm() string {
	f := m.entryForm
	category := "none"
	if len(f.categories) > 0 {
		category = f.categories[f.category].Name
	}
	rows := []string{
		formRow("Title", f.title.View(), f.focus == entryFieldTitle),
		formRow("Details", f.details.View(), f.focus == entryFieldDetails),
		formRow("Date", f.date.View(), f.focus == entryFieldDate),
		formRow("Category", fmt.Sprintf("< %s >", category), f.focus == entryFieldCategory),
	}
	return m.renderForm("Add Entry", rows, f.errMsg, footerEntryForm)
}
