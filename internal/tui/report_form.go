package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/report"
	"github.com/devlogdesk/devlog/internal/util"
)

const (
	reportFieldFrom = iota
	reportFieldTo
	reportFieldCategories
)

// ReportFormModel collects the report filters: an optional date window
// and an optional category selection. No selected categories means all
// of them.
type ReportFormModel struct {
	from       textinput.Model
	to         textinput.Model
	categories []models.Category
	selected   map[string]bool
	focus      int
	errMsg     string
}

func newReportForm(categories []models.Category) ReportFormModel {
	from := textinput.New()
	from.Placeholder = "YYYY-MM-DD (optional)"
	from.CharLimit = len(config.DateFormat)
	from.Width = config.DateInputWidth
	from.Focus()

	to := textinput.New()
	to.Placeholder = "YYYY-MM-DD (optional)"
	to.CharLimit = len(config.DateFormat)
	to.Width = config.DateInputWidth

	return ReportFormModel{
		from:       from,
		to:         to,
		categories: categories,
		selected:   make(map[string]bool),
	}
}

func (f ReportFormModel) fieldCount() int {
	return reportFieldCategories + len(f.categories)
}

// categoryIDs returns the selected category filter in display order,
// nil when nothing is selected so the report includes every category.
func (f ReportFormModel) categoryIDs() []string {
	var ids []string
	for _, cat := range f.categories {
		if f.selected[cat.ID] {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

func (f *ReportFormModel) nextField(delta int) {
	n := f.fieldCount()
	f.focus = (f.focus + delta + n) % n
	f.from.Blur()
	f.to.Blur()
	switch f.focus {
	case reportFieldFrom:
		f.from.Focus()
	case reportFieldTo:
		f.to.Focus()
	}
}

func (f *ReportFormModel) toggleFocused() {
	idx := f.focus - reportFieldCategories
	if idx < 0 || idx >= len(f.categories) {
		return
	}
	id := f.categories[idx].ID
	f.selected[id] = !f.selected[id]
}

func (m MainModel) updateReportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = StateSprintMenu
			return m, nil
		case "enter":
			return m.submitReportForm()
		case "tab", "down":
			m.reportForm.nextField(1)
			return m, nil
		case "shift+tab", "up":
			m.reportForm.nextField(-1)
			return m, nil
		case " ":
			if m.reportForm.focus >= reportFieldCategories {
				m.reportForm.toggleFocused()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.reportForm.focus {
	case reportFieldFrom:
		m.reportForm.from, cmd = m.reportForm.from.Update(msg)
	case reportFieldTo:
		m.reportForm.to, cmd = m.reportForm.to.Update(msg)
	}
	return m, cmd
}

// submitReportForm generates the filtered report, writes the markdown
// file, and shows where it landed.
func (m MainModel) submitReportForm() (tea.Model, tea.Cmd) {
	rep, err := m.eng.GenerateReport(m.ctx, engine.ReportOptions{
		SprintRef:   m.sprint.ID,
		From:        strings.TrimSpace(m.reportForm.from.Value()),
		To:          strings.TrimSpace(m.reportForm.to.Value()),
		CategoryIDs: m.reportForm.categoryIDs(),
	})
	if err != nil {
		var verr engine.ValidationError
		if errors.As(err, &verr) {
			m.reportForm.errMsg = verr.Msg
			return m, nil
		}
		m.err = err
		return m, nil
	}
	path, err := report.WriteMarkdown(util.ReportsDir(), rep)
	if err != nil {
		m.reportForm.errMsg = fmt.Sprintf("write report: %v", err)
		return m, nil
	}
	return m.showText("Report Generated", []string{
		fmt.Sprintf("Generated report for %s", rep.Sprint.Label()),
		fmt.Sprintf("Included items: %d", rep.TotalItems),
		fmt.Sprintf("File: %s", path),
	}), nil
}

func (m MainModel) viewReportForm() string {
	f := m.reportForm
	rows := []string{
		formRow("From", f.from.View(), f.focus == reportFieldFrom),
		formRow("To", f.to.View(), f.focus == reportFieldTo),
		"",
		CurrentTheme.Dim.Render("  Categories (none selected = all):"),
	}
	for i, cat := range f.categories {
		mark := "[ ]"
		if f.selected[cat.ID] {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %s", mark, cat.Name)
		if f.focus == reportFieldCategories+i {
			rows = append(rows, CurrentTheme.Selected.Render("> "+row))
		} else {
			rows = append(rows, CurrentTheme.Normal.Render("  "+row))
		}
	}
	return m.renderForm("Generate Report", rows, f.errMsg, footerReportForm)
}
