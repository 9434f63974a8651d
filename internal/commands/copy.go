package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/report"
	"github.com/devlogdesk/devlog/internal/util"
)

var copyCmd = &cobra.Command{
	Use:   "copy <date>",
	Short: "Copy one day's entries to the clipboard",
	Long: `Copy a day's entries, grouped by category, to the system clipboard.
When no clipboard is available the text is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintRef, _ := cmd.Flags().GetString("sprint")
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprint, err := resolveSprintRef(ctx, eng, sprintRef)
			if err != nil {
				return err
			}
			days, err := eng.Timeline(ctx, sprint.ID)
			if err != nil {
				return err
			}
			text := report.DayText(args[0], days)
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Printf("Clipboard copy failed: %v\n", err)
				fmt.Println("Data preview:")
				fmt.Println(util.TruncateLines(text, config.ClipboardPreviewLines))
				return nil
			}
			fmt.Printf("Copied day data for %s to clipboard.\n", args[0])
			return nil
		})
	},
}

func init() {
	copyCmd.Flags().StringP("sprint", "s", "", "sprint code, id, or number (default the active sprint)")
}
