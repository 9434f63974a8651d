package config

// Layout constants.
const (
	// MinContentWidth is the narrowest usable content area.
	MinContentWidth = 40

	// TargetContentWidth is the preferred content width on wide terminals.
	TargetContentWidth = 78

	// MenuIndent is the left padding for menu rows.
	MenuIndent = 2
)

// Display limits.
const (
	// MaxBodyLines limits summary, day and detail views before truncation.
	MaxBodyLines = 30

	// ClipboardPreviewLines limits the fallback preview when copy fails.
	ClipboardPreviewLines = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum entry title length.
	MaxTitleLength = 120

	// MaxDetailsLength is the maximum entry details length.
	MaxDetailsLength = 500

	// MaxNameLength is the maximum sprint or category name length.
	MaxNameLength = 60

	// DateInputWidth fits a YYYY-MM-DD value plus cursor.
	DateInputWidth = 12
)
