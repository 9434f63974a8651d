// Package report writes sprint reports to disk and renders the shared
// plain-text views of a sprint's timeline.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/util"
)

// WriteMarkdown saves the report's markdown under dir and returns the
// full path of the written file.
func WriteMarkdown(dir string, rep engine.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}
	path := filepath.Join(dir, fileName(rep, "md"))
	if err := os.WriteFile(path, []byte(rep.Markdown), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func fileName(rep engine.Report, ext string) string {
	return fmt.Sprintf("report-%s-%s.%s",
		util.Slugify(rep.Sprint.Name),
		rep.GeneratedAt.Format(config.FileTimestampFormat),
		ext)
}
