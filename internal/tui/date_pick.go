package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/report"
	"github.com/devlogdesk/devlog/internal/util"
)

// dateCount is one row of the date picker.
type dateCount struct {
	date  string
	count int
}

// buildDateCounts lists a sprint's entry dates newest first with the
// number of items logged on each.
func buildDateCounts(entries []models.DailyEntry) []dateCount {
	counts := make(map[string]int)
	for _, en := range entries {
		counts[en.Date]++
	}
	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	out := make([]dateCount, 0, len(dates))
	for _, d := range dates {
		out = append(out, dateCount{date: d, count: counts[d]})
	}
	return out
}

// openDatePick shows the date list, either to view a day or to copy it.
func (m MainModel) openDatePick(copyMode bool) (tea.Model, tea.Cmd) {
	dates := buildDateCounts(m.entries)
	if len(dates) == 0 {
		return m.showText("Dates", []string{"No entries in this sprint yet."}), nil
	}
	m.dates = dates
	m.dateCursor = 0
	m.copyMode = copyMode
	m.state = StateDatePick
	return m, nil
}

func (m MainModel) updateDatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.dateCursor > 0 {
			m.dateCursor--
		}
	case "down", "j":
		// One row past the dates is the Back option.
		if m.dateCursor < len(m.dates) {
			m.dateCursor++
		}
	case "enter", " ":
		if m.dateCursor == len(m.dates) {
			m.state = StateSprintMenu
			return m, nil
		}
		return m.openDate(m.dates[m.dateCursor].date)
	case "left", "esc":
		m.state = StateSprintMenu
	}
	return m, nil
}

// openDate shows the chosen day, or copies it to the clipboard when the
// picker was opened from the copy action. A failed copy falls back to
// showing a preview of the text that would have been copied.
func (m MainModel) openDate(date string) (tea.Model, tea.Cmd) {
	days := engine.BuildTimeline(m.entries, m.categories)
	text := report.DayText(date, days)
	if !m.copyMode {
		body := util.TruncateLines(text, config.MaxBodyLines)
		return m.showText(date, strings.Split(body, "\n")), nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		lines := []string{
			fmt.Sprintf("Clipboard copy failed: %v", err),
			"",
			"Data preview:",
		}
		preview := util.TruncateLines(text, config.ClipboardPreviewLines)
		lines = append(lines, strings.Split(preview, "\n")...)
		return m.showText("Copy Day Data", lines), nil
	}
	return m.showText("Copy Day Data", []string{
		fmt.Sprintf("Copied day data for %s to clipboard.", date),
	}), nil
}

func (m MainModel) viewDatePick() string {
	title := "Pick a Date"
	if m.copyMode {
		title = "Copy a Date"
	}
	s := screen{
		title:    title,
		subtitle: []string{fmt.Sprintf("%s (%s)", m.sprint.Label(), m.sprint.Window())},
		cursor:   m.dateCursor,
		footer:   footerMenu,
	}
	for _, d := range m.dates {
		noun := "items"
		if d.count == 1 {
			noun = "item"
		}
		s.options = append(s.options, fmt.Sprintf("%s (%d %s)", d.date, d.count, noun))
	}
	s.options = append(s.options, "Back")
	return m.renderScreen(s)
}
