package database

import (
	"context"

	"github.com/devlogdesk/devlog/internal/models"
)

func (d *Database) CreateEntry(ctx context.Context, entry models.DailyEntry) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO entries (id, sprint_id, date, category_id, title, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			entry.ID, entry.SprintID, entry.Date, entry.CategoryID,
			entry.Title, toNullableArg(entry.Details), formatTimestamp(entry.CreatedAt))
		return wrapEntryErr("create", entry.ID, err)
	})
}

// EntriesForSprint returns a sprint's entries ordered by date, then by
// creation time. Ids embed the creation nanos, so they break timestamp
// ties in insert order.
func (d *Database) EntriesForSprint(ctx context.Context, sprintID string) ([]models.DailyEntry, error) {
	query, args := NewEntryQuery().
		WhereSprint(sprintID).
		OrderBy("date ASC, created_at ASC, id ASC").
		Build()
	return d.queryEntries(ctx, query, args...)
}

func (d *Database) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.DailyEntry, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.DailyEntry, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapEntryErr("list", "", err)
		}
		defer rows.Close()

		var entries []models.DailyEntry
		for rows.Next() {
			var entry models.DailyEntry
			var createdAt string
			if err := rows.Scan(&entry.ID, &entry.SprintID, &entry.Date,
				&entry.CategoryID, &entry.Title, &entry.Details, &createdAt); err != nil {
				return nil, wrapEntryErr("scan", "", err)
			}
			if entry.CreatedAt, err = parseTimestamp(createdAt); err != nil {
				return nil, wrapEntryErr("scan", entry.ID, err)
			}
			entries = append(entries, entry)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapEntryErr("list", "", err)
		}
		return entries, nil
	})
}
