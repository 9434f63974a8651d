package engine

import (
	"context"

	"github.com/devlogdesk/devlog/internal/models"
)

// CategoryStore defines category persistence operations.
type CategoryStore interface {
	CreateCategory(ctx context.Context, c models.Category) error
	Categories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) error
	// DeleteCategory removes the category and settles its entries in the
	// same transaction: a non-empty reassignTo moves them to that
	// category, an empty reassignTo deletes them.
	DeleteCategory(ctx context.Context, id, reassignTo string) error
}

// SprintStore defines sprint persistence operations.
type SprintStore interface {
	CreateSprint(ctx context.Context, s models.Sprint) error
	Sprints(ctx context.Context) ([]models.Sprint, error)
	// UpdateSprint persists the mutable fields of s (code, name,
	// start_date, end_date) keyed by ID.
	UpdateSprint(ctx context.Context, s models.Sprint) error
	// DeleteSprint removes the sprint and all of its entries.
	DeleteSprint(ctx context.Context, id string) error
}

// EntryStore defines daily entry persistence operations.
type EntryStore interface {
	CreateEntry(ctx context.Context, e models.DailyEntry) error
	EntriesForSprint(ctx context.Context, sprintID string) ([]models.DailyEntry, error)
}

// Store combines the persistence operations the engine runs on. All rule
// checks happen in the engine against listed state; implementations only
// persist, atomically per call.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=engine
type Store interface {
	CategoryStore
	SprintStore
	EntryStore
}
