package engine

import (
	"context"
	"strings"

	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
)

// EntryInput carries the caller-provided fields of a new daily entry.
type EntryInput struct {
	SprintID   string
	Date       string
	CategoryID string
	Title      string
	Details    string
}

// AddEntry logs one item of work. The sprint and category must exist,
// the title must be non-empty and the date well-formed; details are
// optional and dropped when blank.
func (e *Engine) AddEntry(ctx context.Context, in EntryInput) (models.DailyEntry, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.DailyEntry{}, ValidationError{Msg: "entry title is required"}
	}
	date := strings.TrimSpace(in.Date)
	if !validDate(date) {
		return models.DailyEntry{}, ValidationError{Msg: "entry date must be a YYYY-MM-DD date"}
	}
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return models.DailyEntry{}, err
	}
	sprintOK := false
	for _, s := range sprints {
		if s.ID == in.SprintID {
			sprintOK = true
			break
		}
	}
	if !sprintOK {
		return models.DailyEntry{}, NotFoundError{Resource: "sprint", ID: in.SprintID}
	}
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return models.DailyEntry{}, err
	}
	categoryOK := false
	for _, c := range categories {
		if c.ID == in.CategoryID {
			categoryOK = true
			break
		}
	}
	if !categoryOK {
		return models.DailyEntry{}, NotFoundError{Resource: "category", ID: in.CategoryID}
	}
	var details *string
	if d := strings.TrimSpace(in.Details); d != "" {
		details = util.Ptr(d)
	}
	entry := models.DailyEntry{
		ID:         e.newID("entry"),
		SprintID:   in.SprintID,
		Date:       date,
		CategoryID: in.CategoryID,
		Title:      title,
		Details:    details,
		CreatedAt:  e.now().UTC(),
	}
	if err := e.store.CreateEntry(ctx, entry); err != nil {
		return models.DailyEntry{}, err
	}
	return entry, nil
}

// EntriesForSprint lists a sprint's entries as stored.
func (e *Engine) EntriesForSprint(ctx context.Context, sprintID string) ([]models.DailyEntry, error) {
	return e.store.EntriesForSprint(ctx, sprintID)
}
