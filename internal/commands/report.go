package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/report"
	"github.com/devlogdesk/devlog/internal/util"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a sprint report and save it as markdown",
	Long: `Render a sprint's entries as a markdown report and save it under the
reports directory. --from/--to bound entry dates inclusively; --category
restricts the report to the named category ids (repeatable). --pdf
writes a PDF alongside the markdown file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintRef, _ := cmd.Flags().GetString("sprint")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		categories, _ := cmd.Flags().GetStringArray("category")
		pdf, _ := cmd.Flags().GetBool("pdf")
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			sprint, err := resolveSprintRef(ctx, eng, sprintRef)
			if err != nil {
				return err
			}
			// An absent flag means no category filter at all; cobra hands
			// that over as a nil slice, which is exactly the engine's "no
			// filter" signal.
			rep, err := eng.GenerateReport(ctx, engine.ReportOptions{
				SprintRef:   sprint.ID,
				From:        from,
				To:          to,
				CategoryIDs: categories,
			})
			if err != nil {
				return err
			}
			path, err := report.WriteMarkdown(util.ReportsDir(), rep)
			if err != nil {
				return err
			}
			fmt.Printf("Generated report for %s\n", rep.Sprint.Label())
			fmt.Printf("Included items: %d\n", rep.TotalItems)
			fmt.Printf("File: %s\n", path)
			if pdf {
				pdfPath, err := report.WritePDF(util.ReportsDir(), rep)
				if err != nil {
					return err
				}
				fmt.Printf("PDF: %s\n", pdfPath)
			}
			return nil
		})
	},
}

func init() {
	reportCmd.Flags().StringP("sprint", "s", "", "sprint code, id, or number (default the active sprint)")
	reportCmd.Flags().String("from", "", "earliest entry date to include (YYYY-MM-DD)")
	reportCmd.Flags().String("to", "", "latest entry date to include (YYYY-MM-DD)")
	reportCmd.Flags().StringArrayP("category", "c", nil, "category id to include (repeatable; default all)")
	reportCmd.Flags().Bool("pdf", false, "also write a PDF version of the report")
}
