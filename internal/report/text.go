package report

import (
	"fmt"
	"strings"

	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
)

// DayText renders one day's entries grouped by category, the same text
// the timeline command prints and the copy command puts on the
// clipboard.
func DayText(date string, days []engine.TimelineDay) string {
	for _, day := range days {
		if day.Date == date {
			return renderDay(day)
		}
	}
	return fmt.Sprintf("%s\n\nNo entries for this date.", date)
}

func renderDay(day engine.TimelineDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", day.Date)
	for _, cat := range day.Categories {
		fmt.Fprintf(&b, "%s\n", cat.Name)
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "- %s\n", item.DisplayLine())
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// AllDetailsText renders every day of the timeline, newest first, with
// categories and items indented under each date.
func AllDetailsText(days []engine.TimelineDay) string {
	if len(days) == 0 {
		return "No entries in this sprint yet."
	}
	var b strings.Builder
	for _, day := range days {
		fmt.Fprintf(&b, "%s\n", day.Date)
		for _, cat := range day.Categories {
			fmt.Fprintf(&b, "  %s\n", cat.Name)
			for _, item := range cat.Items {
				fmt.Fprintf(&b, "  - %s\n", item.DisplayLine())
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SummaryLines renders the sprint overview: label, window, item total,
// and a per-date count, newest date first.
func SummaryLines(sprint models.Sprint, days []engine.TimelineDay) []string {
	total := 0
	for _, day := range days {
		total += dayItemCount(day)
	}
	lines := []string{
		fmt.Sprintf("Sprint: %s", sprint.Label()),
		fmt.Sprintf("Window: %s", sprint.Window()),
		fmt.Sprintf("Total items: %d", total),
		"",
		"Dates:",
	}
	if len(days) == 0 {
		return append(lines, "- No entries yet")
	}
	for _, day := range days {
		lines = append(lines, fmt.Sprintf("- %s: %d items", day.Date, dayItemCount(day)))
	}
	return lines
}

func dayItemCount(day engine.TimelineDay) int {
	count := 0
	for _, cat := range day.Categories {
		count += len(cat.Items)
	}
	return count
}
