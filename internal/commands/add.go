package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Log a work item",
	Long: `Log a work item for a date (default today) under a category. Without
--sprint the entry lands in the active sprint; without --category it
files under the first listed category.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintRef, _ := cmd.Flags().GetString("sprint")
		categoryID, _ := cmd.Flags().GetString("category")
		entryDate, _ := cmd.Flags().GetString("date")
		details, _ := cmd.Flags().GetString("details")
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprint, err := resolveSprintRef(ctx, eng, sprintRef)
			if err != nil {
				return err
			}
			if categoryID == "" {
				categories, err := eng.ListCategories(ctx)
				if err != nil {
					return err
				}
				if len(categories) == 0 {
					return errors.New("no categories yet; create one with 'devlog category create'")
				}
				categoryID = categories[0].ID
			}
			if entryDate == "" {
				entryDate = time.Now().Format(config.DateFormat)
			}
			entry, err := eng.AddEntry(ctx, engine.EntryInput{
				SprintID:   sprint.ID,
				Date:       entryDate,
				CategoryID: categoryID,
				Title:      strings.Join(args, " "),
				Details:    details,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Logged %q on %s in %s\n", entry.Title, entry.Date, sprint.Label())
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringP("sprint", "s", "", "sprint code, id, or number (default the active sprint)")
	addCmd.Flags().StringP("category", "c", "", "category id (default the first listed)")
	addCmd.Flags().StringP("date", "d", "", "entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("details", "", "extra context shown after the title")
}
