package database

import (
	"context"

	"github.com/devlogdesk/devlog/internal/models"
)

func (d *Database) CreateSprint(ctx context.Context, sprint models.Sprint) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO sprints (id, code, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			sprint.ID, sprint.Code, sprint.Name, sprint.StartDate,
			toNullableArg(sprint.EndDate), formatTimestamp(sprint.CreatedAt))
		return wrapSprintErr("create", sprint.ID, err)
	})
}

func (d *Database) Sprints(ctx context.Context) ([]models.Sprint, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Sprint, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, code, name, start_date, end_date, created_at FROM sprints ORDER BY created_at ASC, rowid ASC")
		if err != nil {
			return nil, wrapSprintErr("list", "", err)
		}
		defer rows.Close()

		var sprints []models.Sprint
		for rows.Next() {
			var sprint models.Sprint
			var createdAt string
			if err := rows.Scan(&sprint.ID, &sprint.Code, &sprint.Name,
				&sprint.StartDate, &sprint.EndDate, &createdAt); err != nil {
				return nil, wrapSprintErr("scan", "", err)
			}
			if sprint.CreatedAt, err = parseTimestamp(createdAt); err != nil {
				return nil, wrapSprintErr("scan", sprint.ID, err)
			}
			sprints = append(sprints, sprint)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapSprintErr("list", "", err)
		}
		return sprints, nil
	})
}

func (d *Database) UpdateSprint(ctx context.Context, sprint models.Sprint) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"UPDATE sprints SET code = ?, name = ?, start_date = ?, end_date = ? WHERE id = ?",
			sprint.Code, sprint.Name, sprint.StartDate,
			toNullableArg(sprint.EndDate), sprint.ID)
		return wrapSprintErr("update", sprint.ID, err)
	})
}

// DeleteSprint removes a sprint. Its entries go with it through the
// ON DELETE CASCADE foreign key.
func (d *Database) DeleteSprint(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM sprints WHERE id = ?", id)
		return wrapSprintErr("delete", id, err)
	})
}
