package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/models"
)

func (d *Database) CreateCategory(ctx context.Context, category models.Category) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)",
			category.ID, category.Name, formatTimestamp(category.CreatedAt))
		return wrapCategoryErr("create", category.ID, err)
	})
}

func (d *Database) Categories(ctx context.Context) ([]models.Category, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Category, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, name, created_at FROM categories ORDER BY created_at ASC, rowid ASC")
		if err != nil {
			return nil, wrapCategoryErr("list", "", err)
		}
		defer rows.Close()

		var categories []models.Category
		for rows.Next() {
			var category models.Category
			var createdAt string
			if err := rows.Scan(&category.ID, &category.Name, &createdAt); err != nil {
				return nil, wrapCategoryErr("scan", "", err)
			}
			if category.CreatedAt, err = parseTimestamp(createdAt); err != nil {
				return nil, wrapCategoryErr("scan", category.ID, err)
			}
			categories = append(categories, category)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapCategoryErr("list", "", err)
		}
		return categories, nil
	})
}

func (d *Database) UpdateCategory(ctx context.Context, category models.Category) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"UPDATE categories SET name = ? WHERE id = ?",
			category.Name, category.ID)
		return wrapCategoryErr("update", category.ID, err)
	})
}

// DeleteCategory removes a category and, in the same transaction, either
// reassigns its entries to reassignTo or deletes them when reassignTo is
// empty.
func (d *Database) DeleteCategory(ctx context.Context, id, reassignTo string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if reassignTo != "" {
			if _, err := tx.Exec("UPDATE entries SET category_id = ? WHERE category_id = ?", reassignTo, id); err != nil {
				return err
			}
		} else {
			if _, err := tx.Exec("DELETE FROM entries WHERE category_id = ?", id); err != nil {
				return err
			}
		}
		_, err := tx.Exec("DELETE FROM categories WHERE id = ?", id)
		return err
	})
	return wrapCategoryErr("delete", id, err)
}

// ensureDefaultCategories seeds the starter categories into an empty
// categories table so a fresh install has somewhere to file entries.
func (d *Database) ensureDefaultCategories(ctx context.Context) error {
	var count int
	if err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return wrapCategoryErr("seed", "", err)
	}
	if count > 0 {
		return nil
	}
	now := formatTimestamp(time.Now())
	for _, dc := range config.DefaultCategories {
		if _, err := d.DB.ExecContext(ctx,
			"INSERT OR IGNORE INTO categories (id, name, created_at) VALUES (?, ?, ?)",
			dc.ID, dc.Name, now); err != nil {
			return wrapCategoryErr("seed", dc.ID, err)
		}
	}
	return nil
}
