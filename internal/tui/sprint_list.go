package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
)

func (m MainModel) updateSprintList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sprints)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.sprints) == 0 {
			return m, nil
		}
		return m.openSprint(m.sprints[m.cursor])
	case "n":
		m.status = ""
		m.sprintForm = newSprintForm(time.Now().Format(config.DateFormat))
		m.state = StateSprintForm
		return m, textinput.Blink
	case "t":
		m.themeName = NextTheme(m.themeName)
		SetTheme(m.themeName)
		if err := m.settings.SetSetting(m.ctx, config.SettingTheme, m.themeName); err != nil {
			util.LogError("save theme", err)
		}
		m.setStatus(fmt.Sprintf("Theme: %s", CurrentTheme.Name))
	case "left", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// openSprint loads a sprint's entries and categories and shows its menu.
func (m MainModel) openSprint(sprint models.Sprint) (tea.Model, tea.Cmd) {
	entries, err := m.eng.EntriesForSprint(m.ctx, sprint.ID)
	if err != nil {
		m.err = err
		return m, nil
	}
	categories, err := m.eng.ListCategories(m.ctx)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.sprint = sprint
	m.entries = entries
	m.categories = categories
	m.menuCursor = 0
	m.status = ""
	m.state = StateSprintMenu
	return m, nil
}

func (m MainModel) viewSprintList() string {
	s := screen{
		title:  "Sprints",
		cursor: m.cursor,
		footer: footerSprintList,
	}
	if len(m.sprints) == 0 {
		s.subtitle = []string{"No sprints yet. Press n to create one."}
	}
	for _, sp := range m.sprints {
		row := fmt.Sprintf("%s (%s)", sp.Label(), sp.Window())
		if sp.ID == m.activeID {
			row += " [active]"
		}
		s.options = append(s.options, row)
	}
	return m.renderScreen(s)
}
