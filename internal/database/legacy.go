package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
)

func (d *Database) legacyDataPath() string {
	return filepath.Join(filepath.Dir(d.dbFile), config.LegacyDataFileName)
}

// migrateLegacyJSON imports the pre-SQLite JSON data file sitting next to
// the database. It only runs against a completely empty database, so it
// happens at most once; populated databases and missing files are left
// alone.
func (d *Database) migrateLegacyJSON(ctx context.Context) error {
	empty, err := d.tablesEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	payload, err := os.ReadFile(d.legacyDataPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read legacy data: %w", err)
	}
	var data VaultExport
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("parse legacy data: %w", err)
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return importLegacyData(tx, data)
	})
}

func (d *Database) tablesEmpty(ctx context.Context) (bool, error) {
	for _, table := range []string{"categories", "sprints", "entries"} {
		var count int
		if err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return false, fmt.Errorf("count %s rows: %w", table, err)
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

// importLegacyData copies categories, sprints, and entries out of the
// legacy file, skipping rows too broken to keep: categories without an id
// or name, sprints without an id or start date, and entries missing their
// sprint, date, category, or title. Entries referencing a category the
// file never declared get one registered under a humanized name.
func importLegacyData(tx *sql.Tx, data VaultExport) error {
	nowT := time.Now()
	now := formatTimestamp(nowT)

	knownCategories := make(map[string]bool, len(data.Categories))
	for _, c := range data.Categories {
		id := strings.TrimSpace(c.ID)
		name := strings.TrimSpace(c.Name)
		if id == "" || name == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO categories (id, name, created_at) VALUES (?, ?, ?)",
			id, name, sanitizeTimestamp(c.CreatedAt, now)); err != nil {
			return fmt.Errorf("import category %s: %w", id, err)
		}
		knownCategories[id] = true
	}

	var sprints []models.Sprint
	for _, s := range data.Sprints {
		id := strings.TrimSpace(s.ID)
		start := strings.TrimSpace(s.StartDate)
		if id == "" || start == "" {
			continue
		}
		createdAt, err := parseTimestamp(s.CreatedAt)
		if err != nil {
			createdAt = nowT
		}
		sprints = append(sprints, models.Sprint{
			ID:        id,
			Code:      strings.TrimSpace(s.Code),
			Name:      strings.TrimSpace(s.Name),
			StartDate: start,
			EndDate:   s.EndDate,
			CreatedAt: createdAt,
		})
	}
	codes := resolveSprintCodes(sprints)
	knownSprints := make(map[string]bool, len(sprints))
	for _, s := range sprints {
		s.Code = codes[s.ID]
		if s.Name == "" {
			s.Name = s.Code
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO sprints (id, code, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			s.ID, s.Code, s.Name, s.StartDate, nilIfEmptyPtr(s.EndDate), formatTimestamp(s.CreatedAt)); err != nil {
			return fmt.Errorf("import sprint %s: %w", s.ID, err)
		}
		knownSprints[s.ID] = true
	}

	for _, e := range data.Entries {
		sprintID := strings.TrimSpace(e.SprintID)
		date := strings.TrimSpace(e.Date)
		categoryID := strings.TrimSpace(e.CategoryID)
		title := strings.TrimSpace(e.Title)
		if sprintID == "" || date == "" || categoryID == "" || title == "" {
			continue
		}
		if !knownSprints[sprintID] {
			continue
		}
		if !knownCategories[categoryID] {
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO categories (id, name, created_at) VALUES (?, ?, ?)",
				categoryID, util.HumanizeCategoryID(categoryID), now); err != nil {
				return fmt.Errorf("register category %s: %w", categoryID, err)
			}
			// The humanized name can collide with an existing
			// category, leaving the id unregistered. Skip the entry
			// rather than trip the foreign key.
			var registered int
			if err := tx.QueryRow("SELECT COUNT(*) FROM categories WHERE id = ?", categoryID).Scan(&registered); err != nil {
				return fmt.Errorf("register category %s: %w", categoryID, err)
			}
			if registered == 0 {
				continue
			}
			knownCategories[categoryID] = true
		}
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = fmt.Sprintf("entry-import-%d", time.Now().UnixNano())
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO entries (id, sprint_id, date, category_id, title, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			id, sprintID, date, categoryID, title, nilIfEmptyPtr(e.Details), sanitizeTimestamp(e.CreatedAt, now)); err != nil {
			return fmt.Errorf("import entry %s: %w", id, err)
		}
	}
	return nil
}

func sanitizeTimestamp(value, fallback string) string {
	t, err := parseTimestamp(value)
	if err != nil {
		return fallback
	}
	return formatTimestamp(t)
}

// resolveSprintCodes decides the code every sprint should carry. Sprints
// are considered oldest first; a code that parses to an unclaimed number
// is kept as is, and everything else (blank, unparseable, duplicate) gets
// the next number above the highest seen anywhere. Gaps from deleted
// sprints are never compacted.
func resolveSprintCodes(sprints []models.Sprint) map[string]string {
	ordered := make([]models.Sprint, len(sprints))
	copy(ordered, sprints)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	max := 0
	for _, s := range ordered {
		if n, ok := engine.ParseSprintNumber(s.Code); ok && n > max {
			max = n
		}
	}

	codes := make(map[string]string, len(ordered))
	used := make(map[int]bool, len(ordered))
	for _, s := range ordered {
		if n, ok := engine.ParseSprintNumber(s.Code); ok && !used[n] {
			used[n] = true
			codes[s.ID] = s.Code
			continue
		}
		max++
		used[max] = true
		codes[s.ID] = engine.FormatSprintCode(max)
	}
	return codes
}

// normalizeSprintCodes rewrites blank, unparseable, and duplicate sprint
// codes so every stored sprint carries a unique code. Runs on every open
// and is a no-op once codes are clean.
func (d *Database) normalizeSprintCodes(ctx context.Context) error {
	sprints, err := d.Sprints(ctx)
	if err != nil {
		return err
	}
	codes := resolveSprintCodes(sprints)
	var stale []models.Sprint
	for _, s := range sprints {
		if code := codes[s.ID]; code != s.Code {
			s.Code = code
			stale = append(stale, s)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, s := range stale {
			if _, err := tx.Exec("UPDATE sprints SET code = ? WHERE id = ?", s.Code, s.ID); err != nil {
				return wrapSprintErr("normalize", s.ID, err)
			}
		}
		return nil
	})
}
