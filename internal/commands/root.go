// Package commands wires the CLI surface. Every subcommand opens the
// database, runs against the engine, and closes it again; the bare
// command with no arguments opens the interactive browser instead.
package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/tui"
	"github.com/devlogdesk/devlog/internal/util"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "devlog",
	Short: "A sprint journal and report engine",
	Long: `devlog keeps a per-sprint journal of daily work items and renders
timelines, summaries, and markdown reports from it. Run without
arguments to open the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			return tui.Run(ctx, eng, db)
		})
	},
}

// SetVersion sets the build information shown by the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// withEngine opens the database, builds the engine on top of it, runs
// fn, and closes the database afterwards.
func withEngine(fn func(ctx context.Context, eng *engine.Engine, db *database.Database) error) error {
	ctx := context.Background()
	db, err := database.Open(ctx, util.DBPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			util.LogError("close database", err)
		}
	}()
	return fn(ctx, engine.New(db), db)
}

// resolveSprintRef picks the sprint to operate on: the given reference
// (code, id, or number), or the active sprint when ref is empty.
func resolveSprintRef(ctx context.Context, eng *engine.Engine, ref string) (models.Sprint, error) {
	if ref != "" {
		return eng.FindSprint(ctx, ref)
	}
	active, err := eng.ActiveSprint(ctx)
	if err != nil {
		return models.Sprint{}, err
	}
	if active == nil {
		return models.Sprint{}, errors.New("no sprints yet; create one with 'devlog sprint create'")
	}
	return *active, nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func init() {
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(versionCmd)
}
