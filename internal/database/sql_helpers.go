package database

import (
	"fmt"
	"time"
)

// toNullableArg converts a possibly-nil pointer into a driver argument,
// mapping nil to SQL NULL.
func toNullableArg[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nilIfEmptyPtr(value *string) interface{} {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

// Timestamps are stored as RFC3339 text in UTC so lexical order matches
// chronological order.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}
