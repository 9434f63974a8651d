package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ExportCategory mirrors a category row for vault export. The same shape
// is read back from legacy JSON data files.
type ExportCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type ExportSprint struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ExportEntry struct {
	ID         string  `json:"id"`
	SprintID   string  `json:"sprint_id"`
	Date       string  `json:"date"`
	CategoryID string  `json:"category_id"`
	Title      string  `json:"title"`
	Details    *string `json:"details,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// VaultExport is the full portable snapshot of a vault.
type VaultExport struct {
	AppVersion string           `json:"app_version,omitempty"`
	ExportedAt string           `json:"exported_at,omitempty"`
	Categories []ExportCategory `json:"categories"`
	Sprints    []ExportSprint   `json:"sprints"`
	Entries    []ExportEntry    `json:"entries"`
}

// ExportOptions controls vault export behavior.
type ExportOptions struct {
	AppVersion    string
	EncryptOutput bool
	Passphrase    string
}

func (d *Database) getAllCategoriesFlat(ctx context.Context) ([]ExportCategory, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, name, created_at FROM categories ORDER BY created_at ASC, rowid ASC")
	if err != nil {
		return nil, wrapCategoryErr("export", "", err)
	}
	defer rows.Close()

	var categories []ExportCategory
	for rows.Next() {
		var c ExportCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, wrapCategoryErr("export", "", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (d *Database) getAllSprintsFlat(ctx context.Context) ([]ExportSprint, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, code, name, start_date, end_date, created_at FROM sprints ORDER BY created_at ASC, rowid ASC")
	if err != nil {
		return nil, wrapSprintErr("export", "", err)
	}
	defer rows.Close()

	var sprints []ExportSprint
	for rows.Next() {
		var s ExportSprint
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, wrapSprintErr("export", "", err)
		}
		sprints = append(sprints, s)
	}
	return sprints, rows.Err()
}

func (d *Database) getAllEntriesFlat(ctx context.Context) ([]ExportEntry, error) {
	query, args := NewEntryQuery().OrderBy("date ASC, created_at ASC, id ASC").Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapEntryErr("export", "", err)
	}
	defer rows.Close()

	var entries []ExportEntry
	for rows.Next() {
		var e ExportEntry
		if err := rows.Scan(&e.ID, &e.SprintID, &e.Date, &e.CategoryID, &e.Title, &e.Details, &e.CreatedAt); err != nil {
			return nil, wrapEntryErr("export", "", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportVault serializes the whole vault to indented JSON. With
// EncryptOutput set and a passphrase supplied, the payload is sealed with
// AES-256-GCM under a key derived from the passphrase.
func (d *Database) ExportVault(ctx context.Context, opts ExportOptions) ([]byte, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	export := VaultExport{
		AppVersion: opts.AppVersion,
		ExportedAt: formatTimestamp(time.Now()),
	}
	var err error
	if export.Categories, err = d.getAllCategoriesFlat(ctx); err != nil {
		return nil, err
	}
	if export.Sprints, err = d.getAllSprintsFlat(ctx); err != nil {
		return nil, err
	}
	if export.Entries, err = d.getAllEntriesFlat(ctx); err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize vault export: %w", err)
	}
	if opts.EncryptOutput && opts.Passphrase != "" {
		return encryptVault(payload, opts.Passphrase)
	}
	return payload, nil
}

// ImportVault restores a previously exported vault. Rows are written with
// INSERT OR REPLACE in one transaction, parents before children, so a
// partial import never survives. Encrypted payloads must be decrypted
// with DecryptVault first.
func (d *Database) ImportVault(ctx context.Context, payload []byte) error {
	if IsEncryptedVault(payload) {
		return ErrVaultEncrypted
	}
	var data VaultExport
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("parse vault export: %w", err)
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, c := range data.Categories {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO categories (id, name, created_at) VALUES (?, ?, ?)",
				c.ID, c.Name, c.CreatedAt); err != nil {
				return fmt.Errorf("import category %s: %w", c.ID, err)
			}
		}
		for _, s := range data.Sprints {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO sprints (id, code, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				s.ID, s.Code, s.Name, s.StartDate, nilIfEmptyPtr(s.EndDate), s.CreatedAt); err != nil {
				return fmt.Errorf("import sprint %s: %w", s.ID, err)
			}
		}
		for _, e := range data.Entries {
			if _, err := tx.Exec(
				"INSERT OR REPLACE INTO entries (id, sprint_id, date, category_id, title, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				e.ID, e.SprintID, e.Date, e.CategoryID, e.Title, nilIfEmptyPtr(e.Details), e.CreatedAt); err != nil {
				return fmt.Errorf("import entry %s: %w", e.ID, err)
			}
		}
		return nil
	})
}
