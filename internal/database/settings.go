package database

import "context"

// GetSetting returns the stored value for key and whether it was set.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting stores a key/value pair, replacing any existing value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}
