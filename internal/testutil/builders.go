package testutil

import (
	"time"

	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
)

// CategoryBuilder provides fluent API for creating test categories.
type CategoryBuilder struct {
	category models.Category
}

func NewCategory() *CategoryBuilder {
	return &CategoryBuilder{
		category: models.Category{
			ID:        "cat-test",
			Name:      "Test Category",
			CreatedAt: time.Now(),
		},
	}
}

func (b *CategoryBuilder) WithID(id string) *CategoryBuilder {
	b.category.ID = id
	return b
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.category.Name = name
	return b
}

func (b *CategoryBuilder) WithCreatedAt(t time.Time) *CategoryBuilder {
	b.category.CreatedAt = t
	return b
}

func (b *CategoryBuilder) Build() models.Category {
	return b.category
}

// SprintBuilder provides fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

func NewSprint() *SprintBuilder {
	return &SprintBuilder{
		sprint: models.Sprint{
			ID:        "sprint-test",
			Code:      "sprint-1",
			Name:      "Test Sprint",
			StartDate: "2025-03-03",
			CreatedAt: time.Now(),
		},
	}
}

func (b *SprintBuilder) WithID(id string) *SprintBuilder {
	b.sprint.ID = id
	return b
}

func (b *SprintBuilder) WithCode(code string) *SprintBuilder {
	b.sprint.Code = code
	return b
}

func (b *SprintBuilder) WithName(name string) *SprintBuilder {
	b.sprint.Name = name
	return b
}

func (b *SprintBuilder) WithWindow(startDate, endDate string) *SprintBuilder {
	b.sprint.StartDate = startDate
	if endDate == "" {
		b.sprint.EndDate = nil
	} else {
		b.sprint.EndDate = util.Ptr(endDate)
	}
	return b
}

func (b *SprintBuilder) WithCreatedAt(t time.Time) *SprintBuilder {
	b.sprint.CreatedAt = t
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}

// EntryBuilder provides fluent API for creating test daily entries.
type EntryBuilder struct {
	entry models.DailyEntry
}

func NewEntry() *EntryBuilder {
	return &EntryBuilder{
		entry: models.DailyEntry{
			ID:         "entry-test",
			SprintID:   "sprint-test",
			Date:       "2025-03-03",
			CategoryID: "cat-test",
			Title:      "Test Entry",
			CreatedAt:  time.Now(),
		},
	}
}

func (b *EntryBuilder) WithID(id string) *EntryBuilder {
	b.entry.ID = id
	return b
}

func (b *EntryBuilder) WithSprintID(id string) *EntryBuilder {
	b.entry.SprintID = id
	return b
}

func (b *EntryBuilder) WithDate(date string) *EntryBuilder {
	b.entry.Date = date
	return b
}

func (b *EntryBuilder) WithCategoryID(id string) *EntryBuilder {
	b.entry.CategoryID = id
	return b
}

func (b *EntryBuilder) WithTitle(title string) *EntryBuilder {
	b.entry.Title = title
	return b
}

func (b *EntryBuilder) WithDetails(details string) *EntryBuilder {
	b.entry.Details = util.Ptr(details)
	return b
}

func (b *EntryBuilder) WithCreatedAt(t time.Time) *EntryBuilder {
	b.entry.CreatedAt = t
	return b
}

func (b *EntryBuilder) Build() models.DailyEntry {
	return b.entry
}
