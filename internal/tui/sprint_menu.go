package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/report"
	"github.com/devlogdesk/devlog/internal/util"
)

// Sprint menu actions, in display order.
const (
	menuSummary = iota
	menuDate
	menuDetails
	menuCopy
	menuReport
	menuAddEntry
	menuBack
)

var sprintMenuOptions = []string{
	"See sprint summary",
	"See specific date",
	"See all details",
	"Copy one day data",
	"Generate report",
	"Add entry",
	"Back",
}

func (m MainModel) updateSprintMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(sprintMenuOptions)-1 {
			m.menuCursor++
		}
	case "enter", " ":
		return m.runMenuAction()
	case "left", "esc":
		return m.backToList()
	}
	return m, nil
}

func (m MainModel) runMenuAction() (tea.Model, tea.Cmd) {
	m.status = ""
	switch m.menuCursor {
	case menuSummary:
		days := engine.BuildTimeline(m.entries, m.categories)
		return m.showText("Sprint Summary", report.SummaryLines(m.sprint, days)), nil
	case menuDate:
		return m.openDatePick(false)
	case menuDetails:
		days := engine.BuildTimeline(m.entries, m.categories)
		text := util.TruncateLines(report.AllDetailsText(days), config.MaxBodyLines)
		return m.showText("All Details", strings.Split(text, "\n")), nil
	case menuCopy:
		return m.openDatePick(true)
	case menuReport:
		m.reportForm = newReportForm(m.categories)
		m.state = StateReportForm
		return m, textinput.Blink
	case menuAddEntry:
		if len(m.categories) == 0 {
			m.setStatusError("No categories yet. Create one with 'devlog category create'.")
			return m, nil
		}
		m.entryForm = newEntryForm(time.Now().Format(config.DateFormat), m.categories)
		m.state = StateEntryForm
		return m, textinput.Blink
	case menuBack:
		return m.backToList()
	}
	return m, nil
}

func (m MainModel) viewSprintMenu() string {
	header := fmt.Sprintf("%s (%s)", m.sprint.Label(), m.sprint.Window())
	if m.sprint.ID == m.activeID {
		header += " [active]"
	}
	s := screen{
		title: "Sprint",
		subtitle: []string{
			header,
			fmt.Sprintf("%d entries", len(m.entries)),
		},
		options: sprintMenuOptions,
		cursor:  m.menuCursor,
		footer:  footerMenu,
	}
	return m.renderScreen(s)
}
