package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/util"
)

// Key help footers, one per screen family.
const (
	footerSprintList = "[Up/Down] Navigate | [Enter] Open | [n] New Sprint | [t] Theme | [q] Quit"
	footerMenu       = "[Up/Down] Navigate | [Enter] Select | [Left] Back | [q] Quit"
	footerText       = "[Enter] Back | [q] Quit"
	footerSprintForm = "[Tab] Next Field | [Left/Right] Duration | [Enter] Create | [Esc] Cancel"
	footerEntryForm  = "[Tab] Next Field | [Left/Right] Category | [Enter] Save | [Esc] Cancel"
	footerReportForm = "[Tab] Next | [Space] Toggle Category | [Enter] Generate | [Esc] Cancel"
)

// screen describes one cursor-driven page: a title, optional context
// lines, optional read-only body lines, and the selectable options.
type screen struct {
	title    string
	subtitle []string
	body     []string
	options  []string
	cursor   int
	footer   string
}

// renderScreen lays out the shared chrome around a screen: the app
// banner, the screen content, the status line, and the key help footer.
func (m MainModel) renderScreen(s screen) string {
	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("DevLog Desk") + "\n")
	b.WriteString(CurrentTheme.Title.Render(truncateRow(s.title, width)) + "\n\n")
	for _, line := range s.subtitle {
		b.WriteString(CurrentTheme.Dim.Render(truncateRow(line, width)) + "\n")
	}
	if len(s.subtitle) > 0 {
		b.WriteString("\n")
	}
	for _, line := range s.body {
		b.WriteString(CurrentTheme.Normal.Render(truncateRow(line, width)) + "\n")
	}
	if len(s.body) > 0 {
		b.WriteString("\n")
	}
	for i, opt := range s.options {
		row := truncateRow(opt, width-config.MenuIndent)
		if i == s.cursor {
			b.WriteString(CurrentTheme.Selected.Render("> "+row) + "\n")
		} else {
			b.WriteString(CurrentTheme.Normal.Render("  "+row) + "\n")
		}
	}
	if m.status != "" {
		style := CurrentTheme.Status
		if m.statusIsErr {
			style = CurrentTheme.Error
		}
		b.WriteString("\n" + style.Render(truncateRow(m.status, width)) + "\n")
	}
	if s.footer != "" {
		b.WriteString("\n" + CurrentTheme.Dim.Render(s.footer))
	}
	return CurrentTheme.Base.Render(b.String())
}

// renderForm lays out a titled stack of form rows plus an optional
// validation message under them.
func (m MainModel) renderForm(title string, rows []string, errMsg, footer string) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("DevLog Desk") + "\n")
	b.WriteString(CurrentTheme.Title.Render(title) + "\n\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
	if errMsg != "" {
		b.WriteString("\n" + CurrentTheme.Error.Render(truncateRow(errMsg, m.contentWidth())) + "\n")
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render(footer))
	return CurrentTheme.Base.Render(b.String())
}

// formRow renders one labelled form field, marking the focused one with
// the cursor prefix.
func formRow(label, value string, focused bool) string {
	if focused {
		return CurrentTheme.Selected.Render("> "+label+":") + " " + value
	}
	return CurrentTheme.Normal.Render("  "+label+":") + " " + value
}

// truncateRow width-trims one rendered row, keeping any ANSI sequences
// in the text intact.
func truncateRow(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// contentWidth is the row budget used for truncation. Before the first
// WindowSizeMsg arrives the terminal width is unknown, so assume a
// standard screen.
func (m MainModel) contentWidth() int {
	if m.width == 0 {
		return config.TargetContentWidth
	}
	return util.Clamp(m.width-2*config.MenuIndent, config.MinContentWidth, config.TargetContentWidth)
}
