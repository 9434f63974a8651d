package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
}

var sprintListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sprints, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprints, err := eng.ListSprints(ctx)
			if err != nil {
				return err
			}
			if len(sprints) == 0 {
				fmt.Println("No sprints yet. Use 'devlog sprint create' to start one.")
				return nil
			}
			active, err := eng.ActiveSprint(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %-28s %-24s %s\n", "CODE", "NAME", "WINDOW", "")
			for _, s := range sprints {
				marker := ""
				if active != nil && active.ID == s.ID {
					marker = "active"
				}
				fmt.Printf("%-12s %-28s %-24s %s\n", s.Code, clip(s.Name, 28), s.Window(), marker)
			}
			return nil
		})
	},
}

var sprintCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a sprint",
	Long: `Create a sprint starting today (or --start). --days 7|14 closes the
window after that many days; without it the sprint stays open-ended.
The name defaults to the allocated sprint code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		days, _ := cmd.Flags().GetInt("days")
		var duration *int
		if cmd.Flags().Changed("days") {
			duration = &days
		}
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			if start == "" {
				start = time.Now().Format(config.DateFormat)
			}
			sprint, err := eng.CreateSprint(ctx, optionalArg(args), start, duration)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s (%s)\n", sprint.Label(), sprint.Window())
			return nil
		})
	},
}

var sprintRenameCmd = &cobra.Command{
	Use:   "rename <sprint> <name>",
	Short: "Rename a sprint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprint, err := eng.FindSprint(ctx, args[0])
			if err != nil {
				return err
			}
			renamed, err := eng.RenameSprint(ctx, sprint.ID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %s\n", sprint.Label(), renamed.Label())
			return nil
		})
	},
}

var sprintDeleteCmd = &cobra.Command{
	Use:   "delete <sprint>",
	Short: "Delete a sprint and all of its entries",
	Long: `Delete a sprint and every entry logged against it. The active sprint
cannot be deleted; its code is retired either way and never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprint, err := eng.FindSprint(ctx, args[0])
			if err != nil {
				return err
			}
			if err := eng.DeleteSprint(ctx, sprint.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s and its entries\n", sprint.Label())
			return nil
		})
	},
}

func init() {
	sprintCreateCmd.Flags().String("start", "", "start date (YYYY-MM-DD, default today)")
	sprintCreateCmd.Flags().Int("days", 0, "sprint length in days (7 or 14)")

	sprintCmd.AddCommand(sprintListCmd)
	sprintCmd.AddCommand(sprintCreateCmd)
	sprintCmd.AddCommand(sprintRenameCmd)
	sprintCmd.AddCommand(sprintDeleteCmd)
}
