package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage entry categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			categories, err := eng.ListCategories(ctx)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Println("No categories yet. Use 'devlog category create' to add one.")
				return nil
			}
			fmt.Printf("%-28s %s\n", "ID", "NAME")
			for _, c := range categories {
				fmt.Printf("%-28s %s\n", clip(c.ID, 28), c.Name)
			}
			return nil
		})
	},
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			category, err := eng.CreateCategory(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s)\n", category.Name, category.ID)
			return nil
		})
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			category, err := eng.RenameCategory(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed category to %s\n", category.Name)
			return nil
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Long: `Delete a category. While other categories exist, --into names the one
that takes over its entries. Deleting the last category removes its
entries with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		into, _ := cmd.Flags().GetString("into")
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			if err := eng.DeleteCategory(ctx, args[0], into); err != nil {
				return err
			}
			if into != "" {
				fmt.Printf("Deleted category %s; entries moved to %s\n", args[0], into)
			} else {
				fmt.Printf("Deleted category %s\n", args[0])
			}
			return nil
		})
	},
}

func init() {
	categoryDeleteCmd.Flags().String("into", "", "category id that takes over the entries")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryCreateCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
