package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devlogdesk/devlog/internal/models"
)

// ReportOptions narrows a sprint report. From and To bound entry dates
// inclusively when set. A nil CategoryIDs means no category filter; a
// non-nil empty slice is rejected, since it can only be a caller mistake
// that would silently produce an empty report.
type ReportOptions struct {
	SprintRef   string
	From        string
	To          string
	CategoryIDs []string
}

// Report is a rendered sprint report plus the data it was rendered
// from, so file writers can lay the same content out in other formats.
type Report struct {
	Sprint      models.Sprint
	Days        []TimelineDay
	Markdown    string
	TotalItems  int
	From        string
	To          string
	GeneratedAt time.Time
}

// GenerateReport renders a markdown report of a sprint's entries,
// newest day first, categories alphabetical within a day, items
// numbered in creation order.
func (e *Engine) GenerateReport(ctx context.Context, opts ReportOptions) (Report, error) {
	if opts.From != "" && !validDate(opts.From) {
		return Report{}, ValidationError{Msg: "report start date must be a YYYY-MM-DD date"}
	}
	if opts.To != "" && !validDate(opts.To) {
		return Report{}, ValidationError{Msg: "report end date must be a YYYY-MM-DD date"}
	}
	if opts.CategoryIDs != nil && len(opts.CategoryIDs) == 0 {
		return Report{}, ValidationError{Msg: "category filter must name at least one category"}
	}
	sprint, err := e.FindSprint(ctx, opts.SprintRef)
	if err != nil {
		return Report{}, err
	}
	entries, err := e.store.EntriesForSprint(ctx, sprint.ID)
	if err != nil {
		return Report{}, err
	}
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return Report{}, err
	}
	var wanted map[string]bool
	if opts.CategoryIDs != nil {
		wanted = make(map[string]bool, len(opts.CategoryIDs))
		for _, id := range opts.CategoryIDs {
			wanted[id] = true
		}
	}
	filtered := entries[:0:0]
	for _, en := range entries {
		if opts.From != "" && en.Date < opts.From {
			continue
		}
		if opts.To != "" && en.Date > opts.To {
			continue
		}
		if wanted != nil && !wanted[en.CategoryID] {
			continue
		}
		filtered = append(filtered, en)
	}
	days := BuildTimeline(filtered, categories)
	generatedAt := e.now().UTC()
	markdown := renderReportMarkdown(sprint, days, opts, generatedAt, len(filtered))
	return Report{
		Sprint:      sprint,
		Days:        days,
		Markdown:    markdown,
		TotalItems:  len(filtered),
		From:        opts.From,
		To:          opts.To,
		GeneratedAt: generatedAt,
	}, nil
}

func renderReportMarkdown(sprint models.Sprint, days []TimelineDay, opts ReportOptions, exportedAt time.Time, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sprint Report: %s\n\n", sprint.Label())
	fmt.Fprintf(&b, "- Sprint ID: `%s`\n", sprint.ID)
	fmt.Fprintf(&b, "- Sprint Code: `%s`\n", sprint.Code)
	fmt.Fprintf(&b, "- Sprint Window: %s\n", sprint.Window())
	fmt.Fprintf(&b, "- Exported At: %s\n", exportedAt.Format(time.RFC3339))
	if opts.From != "" {
		fmt.Fprintf(&b, "- Report From: %s\n", opts.From)
	}
	if opts.To != "" {
		fmt.Fprintf(&b, "- Report To: %s\n", opts.To)
	}
	fmt.Fprintf(&b, "- Included Items: %d\n\n", total)

	if len(days) == 0 {
		b.WriteString("No items found for the selected filters.\n")
		return b.String()
	}
	for _, day := range days {
		fmt.Fprintf(&b, "## %s\n\n", day.Date)
		for _, cat := range day.Categories {
			fmt.Fprintf(&b, "### %s\n", cat.Name)
			for i, item := range cat.Items {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item.DisplayLine())
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
