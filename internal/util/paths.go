package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/devlogdesk/devlog/internal/config"
)

// DataDir resolves the application data root. The DEVLOG_DATA_DIR
// override wins, then XDG_DATA_HOME, then ~/.local/share/devlog.
func DataDir() string {
	if base := strings.TrimSpace(os.Getenv(config.EnvDataDir)); base != "" {
		return base
	}
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, config.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", config.AppName)
	}
	return filepath.Join(home, ".local", "share", config.AppName)
}

// DBPath resolves the sqlite database file. DEVLOG_DB_PATH overrides the
// full path; otherwise the file lives under the data root.
func DBPath() string {
	if p := strings.TrimSpace(os.Getenv(config.EnvDBPath)); p != "" {
		return p
	}
	return filepath.Join(DataDir(), config.DBFileName)
}

func ReportsDir() string {
	return filepath.Join(DataDir(), config.ReportsDirName)
}

func ExportsDir() string {
	return filepath.Join(DataDir(), config.ExportsDirName)
}
