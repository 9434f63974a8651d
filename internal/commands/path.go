package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/util"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the database file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(util.DBPath())
	},
}
