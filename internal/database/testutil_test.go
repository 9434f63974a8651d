package database

import (
	"context"
	"testing"
	"time"

	"github.com/devlogdesk/devlog/internal/models"
)

// TestDataBuilder seeds rows through the store methods, stepping the
// creation clock one second per row so list orders stay deterministic.
// Entries attach to the most recently added category and sprint.
type TestDataBuilder struct {
	t     *testing.T
	ctx   context.Context
	db    *Database
	clock time.Time

	CategoryID string
	SprintID   string
}

func NewTestData(t *testing.T, ctx context.Context, db *Database) *TestDataBuilder {
	t.Helper()
	return &TestDataBuilder{
		t:     t,
		ctx:   ctx,
		db:    db,
		clock: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *TestDataBuilder) tick() time.Time {
	b.clock = b.clock.Add(time.Second)
	return b.clock
}

func (b *TestDataBuilder) WithCategory(id, name string) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.CreateCategory(b.ctx, models.Category{ID: id, Name: name, CreatedAt: b.tick()}); err != nil {
		b.t.Fatalf("create category %s: %v", id, err)
	}
	b.CategoryID = id
	return b
}

func (b *TestDataBuilder) WithSprint(id, code, name, startDate string, endDate *string) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.CreateSprint(b.ctx, models.Sprint{
		ID:        id,
		Code:      code,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: b.tick(),
	}); err != nil {
		b.t.Fatalf("create sprint %s: %v", id, err)
	}
	b.SprintID = id
	return b
}

func (b *TestDataBuilder) WithEntry(id, date, title string, details *string) *TestDataBuilder {
	b.t.Helper()
	if err := b.db.CreateEntry(b.ctx, models.DailyEntry{
		ID:         id,
		SprintID:   b.SprintID,
		Date:       date,
		CategoryID: b.CategoryID,
		Title:      title,
		Details:    details,
		CreatedAt:  b.tick(),
	}); err != nil {
		b.t.Fatalf("create entry %s: %v", id, err)
	}
	return b
}
