package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported vault file",
	Long: `Load a vault export back into the database. Encrypted vaults prompt
for their passphrase. Existing records with matching ids are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read vault file: %w", err)
			}
			if database.IsEncryptedVault(payload) {
				pass, err := promptPassphrase("Vault passphrase: ")
				if err != nil {
					return err
				}
				if payload, err = database.DecryptVault(payload, pass); err != nil {
					return err
				}
			}
			if err := db.ImportVault(ctx, payload); err != nil {
				return err
			}
			fmt.Printf("Imported vault from %s\n", args[0])
			return nil
		})
	},
}
