package models

import (
	"strings"
	"time"
)

// Category labels daily entries (Meeting, Tasks, ...). Names are unique
// case-insensitively.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Sprint is a work window. Code is the stable human-facing identifier
// ("sprint-7"); codes only ever count upward and are never reassigned,
// even after the sprint is deleted.
type Sprint struct {
	ID        string
	Code      string
	Name      string
	StartDate string
	EndDate   *string // nil = open-ended
	CreatedAt time.Time
}

// Label is the display name for a sprint: the name, the code when the
// name is blank, or "code - name" when both carry information.
func (s Sprint) Label() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return s.Code
	}
	if strings.TrimSpace(s.Code) == "" || strings.EqualFold(s.Code, s.Name) {
		return s.Name
	}
	return s.Code + " - " + s.Name
}

// Window renders the sprint date range, "2025-03-03 to 2025-03-16" or
// "2025-03-03 to open".
func (s Sprint) Window() string {
	end := "open"
	if s.EndDate != nil && *s.EndDate != "" {
		end = *s.EndDate
	}
	return s.StartDate + " to " + end
}

// DailyEntry is one logged item of work on a date, under a category.
type DailyEntry struct {
	ID         string
	SprintID   string
	Date       string
	CategoryID string
	Title      string
	Details    *string
	CreatedAt  time.Time
}

// DisplayLine renders the entry as "title" or "title - details".
func (e DailyEntry) DisplayLine() string {
	if e.Details != nil && strings.TrimSpace(*e.Details) != "" {
		return e.Title + " - " + *e.Details
	}
	return e.Title
}
