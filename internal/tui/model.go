package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/models"
)

// SessionState identifies the screen the explorer is showing.
type SessionState int

const (
	StateSprintList SessionState = iota
	StateSprintMenu
	StateDatePick
	StateTextView
	StateSprintForm
	StateEntryForm
	StateReportForm
)

// MainModel is the root bubbletea model. The explorer state is kept
// flat: one screen enum plus the data each screen renders, with the
// input-heavy forms split into their own sub-models.
type MainModel struct {
	ctx      context.Context
	eng      Engine
	settings Settings

	state     SessionState
	themeName string

	// Sprint list screen.
	sprints  []models.Sprint
	activeID string
	cursor   int

	// The opened sprint and its data, shared by the menu screens.
	sprint     models.Sprint
	entries    []models.DailyEntry
	categories []models.Category
	menuCursor int

	// Date picker, used for viewing a day and for copying one.
	dates      []dateCount
	dateCursor int
	copyMode   bool

	// Read-only text screen.
	text textState

	sprintForm SprintFormModel
	entryForm  EntryFormModel
	reportForm ReportFormModel

	status      string
	statusIsErr bool

	err    error
	width  int
	height int
}

// Run starts the interactive explorer and blocks until it exits.
func Run(ctx context.Context, eng Engine, settings Settings) error {
	if os.Getenv(config.EnvDebug) != "" {
		f, err := tea.LogToFile("devlog-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}
	p := tea.NewProgram(NewMainModel(ctx, eng, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func NewMainModel(ctx context.Context, eng Engine, settings Settings) MainModel {
	m := MainModel{
		ctx:       ctx,
		eng:       eng,
		settings:  settings,
		state:     StateSprintList,
		themeName: themeOrder[0],
	}
	if name, ok := settings.GetSetting(ctx, config.SettingTheme); ok {
		if _, known := Themes[name]; known {
			m.themeName = name
		}
	}
	SetTheme(m.themeName)
	m.err = m.reloadSprints()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.String() == "q" && !m.inputActive() {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// A load failure leaves nothing to drive; only quit remains.
	if m.err != nil {
		return m, nil
	}

	switch m.state {
	case StateSprintList:
		return m.updateSprintList(msg)
	case StateSprintMenu:
		return m.updateSprintMenu(msg)
	case StateDatePick:
		return m.updateDatePick(msg)
	case StateTextView:
		return m.updateTextView(msg)
	case StateSprintForm:
		return m.updateSprintForm(msg)
	case StateEntryForm:
		return m.updateEntryForm(msg)
	case StateReportForm:
		return m.updateReportForm(msg)
	}
	return m, nil
}

func (m MainModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}

	switch m.state {
	case StateSprintList:
		return m.viewSprintList()
	case StateSprintMenu:
		return m.viewSprintMenu()
	case StateDatePick:
		return m.viewDatePick()
	case StateTextView:
		return m.viewTextView()
	case StateSprintForm:
		return m.viewSprintForm()
	case StateEntryForm:
		return m.viewEntryForm()
	case StateReportForm:
		return m.viewReportForm()
	}

	return ""
}

// inputActive reports whether the focused screen owns plain keystrokes,
// in which case letters like q must reach the text inputs.
func (m MainModel) inputActive() bool {
	switch m.state {
	case StateSprintForm, StateEntryForm, StateReportForm:
		return true
	}
	return false
}

// reloadSprints refreshes the sprint list and the derived active sprint.
func (m *MainModel) reloadSprints() error {
	sprints, err := m.eng.ListSprints(m.ctx)
	if err != nil {
		return err
	}
	active, err := m.eng.ActiveSprint(m.ctx)
	if err != nil {
		return err
	}
	m.sprints = sprints
	m.activeID = ""
	if active != nil {
		m.activeID = active.ID
	}
	if m.cursor >= len(m.sprints) {
		m.cursor = 0
	}
	return nil
}

// backToList returns to the sprint list, refreshing it first so edits
// made from the menu screens show up.
func (m MainModel) backToList() (tea.Model, tea.Cmd) {
	if err := m.reloadSprints(); err != nil {
		m.err = err
		return m, nil
	}
	m.state = StateSprintList
	return m, nil
}

func (m *MainModel) setStatus(msg string) {
	m.status = msg
	m.statusIsErr = false
}

func (m *MainModel) setStatusError(msg string) {
	m.status = msg
	m.statusIsErr = true
}
