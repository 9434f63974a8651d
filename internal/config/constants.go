package config

// Database/application settings.
const (
	AppName            = "devlog"
	DBFileName         = "daily-updates.sqlite"
	LegacyDataFileName = "daily-updates-data.json"
	ReportsDirName     = "reports"
	ExportsDirName     = "exports"
)

// Environment overrides.
const (
	EnvDBPath  = "DEVLOG_DB_PATH"
	EnvDataDir = "DEVLOG_DATA_DIR"
	EnvDebug   = "DEVLOG_DEBUG"
)

// Date and timestamp formats.
const (
	// DateFormat is the wire format for entry dates and sprint windows.
	// Zero-padded ISO dates compare correctly as strings.
	DateFormat = "2006-01-02"

	// FileTimestampFormat stamps report and export filenames.
	FileTimestampFormat = "20060102150405"
)

// Sprint settings.
const (
	SprintCodePrefix = "sprint-"

	SprintDurationShort = 7
	SprintDurationLong  = 14
)

// DefaultCategories are seeded into an empty database, in this order.
var DefaultCategories = []struct {
	ID   string
	Name string
}{
	{ID: "pr-reviews", Name: "PR-Reviews"},
	{ID: "meeting", Name: "Meeting"},
	{ID: "tasks", Name: "Tasks"},
}

// Settings keys.
const (
	SettingTheme = "theme"
)
