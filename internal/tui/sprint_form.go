package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/util"
)

// durationChoices are the selectable sprint lengths, in cycle order.
// A zero day count means the sprint stays open-ended.
var durationChoices = []struct {
	label string
	days  int
}{
	{"open-ended", 0},
	{"1 week", config.SprintDurationShort},
	{"2 weeks", config.SprintDurationLong},
}

const (
	sprintFieldName = iota
	sprintFieldStart
	sprintFieldDuration
	sprintFieldCount
)

// SprintFormModel collects the fields for a new sprint.
type SprintFormModel struct {
	name     textinput.Model
	start    textinput.Model
	duration int
	focus    int
	errMsg   string
}

func newSprintForm(today string) SprintFormModel {
	name := textinput.New()
	name.Placeholder = "Sprint name"
	name.CharLimit = config.MaxNameLength
	name.Width = 40
	name.Focus()

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = len(config.DateFormat)
	start.Width = config.DateInputWidth
	start.SetValue(today)

	return SprintFormModel{name: name, start: start}
}

// durationDays maps the selected choice to the engine's optional length.
func (f SprintFormModel) durationDays() *int {
	if durationChoices[f.duration].days == 0 {
		return nil
	}
	return util.Ptr(durationChoices[f.duration].days)
}

// nextField moves focus by delta, wrapping at the ends.
func (f *SprintFormModel) nextField(delta int) {
	f.focus = (f.focus + delta + sprintFieldCount) % sprintFieldCount
	f.name.Blur()
	f.start.Blur()
	switch f.focus {
	case sprintFieldName:
		f.name.Focus()
	case sprintFieldStart:
		f.start.Focus()
	}
}

func (m MainModel) updateSprintForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = StateSprintList
			return m, nil
		case "enter":
			return m.submitSprintForm()
		case "tab", "down":
			m.sprintForm.nextField(1)
			return m, nil
		case "shift+tab", "up":
			m.sprintForm.nextField(-1)
			return m, nil
		case "left", "right", " ":
			if m.sprintForm.focus == sprintFieldDuration {
				delta := 1
				if keyMsg.String() == "left" {
					delta = -1
				}
				n := len(durationChoices)
				m.sprintForm.duration = (m.sprintForm.duration + delta + n) % n
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.sprintForm.focus {
	case sprintFieldName:
		m.sprintForm.name, cmd = m.sprintForm.name.Update(msg)
	case sprintFieldStart:
		m.sprintForm.start, cmd = m.sprintForm.start.Update(msg)
	}
	return m, cmd
}

// submitSprintForm creates the sprint and returns to the refreshed
// list. Validation failures stay on the form; anything else is fatal.
func (m MainModel) submitSprintForm() (tea.Model, tea.Cmd) {
	sprint, err := m.eng.CreateSprint(m.ctx, m.sprintForm.name.Value(), m.sprintForm.start.Value(), m.sprintForm.durationDays())
	if err != nil {
		var verr engine.ValidationError
		if errors.As(err, &verr) {
			m.sprintForm.errMsg = verr.Msg
			return m, nil
		}
		m.err = err
		return m, nil
	}
	if err := m.reloadSprints(); err != nil {
		m.err = err
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Created %s", sprint.Label()))
	m.state = StateSprintList
	return m, nil
}

func (m MainModel) viewSprintForm() string {
	f := m.sprintForm
	rows := []string{
		formRow("Name", f.name.View(), f.focus == sprintFieldName),
		formRow("Start date", f.start.View(), f.focus == sprintFieldStart),
		formRow("Duration", fmt.Sprintf("< %s >", durationChoices[f.duration].label), f.focus == sprintFieldDuration),
	}
	return m.renderForm("New Sprint", rows, f.errMsg, footerSprintForm)
}
