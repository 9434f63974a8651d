package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// textState holds the content of the read-only text screen.
type textState struct {
	title string
	lines []string
}

// showText switches to the read-only text screen. Leaving it returns to
// the sprint menu.
func (m MainModel) showText(title string, lines []string) MainModel {
	m.text = textState{title: title, lines: lines}
	m.state = StateTextView
	return m
}

func (m MainModel) updateTextView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter", " ", "left", "esc", "b":
		m.state = StateSprintMenu
	}
	return m, nil
}

func (m MainModel) viewTextView() string {
	s := screen{
		title:   m.text.title,
		body:    m.text.lines,
		options: []string{"Back"},
		footer:  footerText,
	}
	return m.renderScreen(s)
}
