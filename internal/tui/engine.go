package tui

import (
	"context"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
)

// Engine defines the journal operations the explorer requires.
type Engine interface {
	ListSprints(ctx context.Context) ([]models.Sprint, error)
	ActiveSprint(ctx context.Context) (*models.Sprint, error)
	CreateSprint(ctx context.Context, name, startDate string, durationDays *int) (models.Sprint, error)

	ListCategories(ctx context.Context) ([]models.Category, error)

	AddEntry(ctx context.Context, in engine.EntryInput) (models.DailyEntry, error)
	EntriesForSprint(ctx context.Context, sprintID string) ([]models.DailyEntry, error)

	GenerateReport(ctx context.Context, opts engine.ReportOptions) (engine.Report, error)
}

// Settings persists explorer preferences between runs.
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

var (
	_ Engine   = (*engine.Engine)(nil)
	_ Settings = (*database.Database)(nil)
)
