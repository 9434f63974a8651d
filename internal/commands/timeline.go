package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/report"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a sprint's entries grouped by day and category",
	Args:  cobra.NoArgs,
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
			fmt.Printf("%s (%s)\n\n", sprint.Label(), sprint.Window())
			fmt.Println(report.AllDetailsText(days))
			return nil
		})
	},
}

func init() {
	timelineCmd.Flags().StringP("sprint", "s", "", "sprint code, id, or number (default the active sprint)")
}
