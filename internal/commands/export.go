package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devlogdesk/devlog/internal/database"
	"github.com/devlogdesk/devlog/internal/engine"
	"github.com/devlogdesk/devlog/internal/util"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON vault file",
	Long: `Serialize every category, sprint, and entry to a JSON vault file under
the exports directory. --encrypt seals the payload with a passphrase;
the same passphrase is required to import it again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		encrypt, _ := cmd.Flags().GetBool("encrypt")
		return withEngine(func(ctx context.Context, eng *engine.Engine, db *database.Database) error {
			opts := database.ExportOptions{AppVersion: version, EncryptOutput: encrypt}
			if encrypt {
				pass, err := promptPassphrase("Export passphrase: ")
				if err != nil {
					return err
				}
				confirm, err := promptPassphrase("Confirm passphrase: ")
				if err != nil {
					return err
				}
				if pass == "" || pass != confirm {
					return errors.New("passphrases are empty or do not match")
				}
				opts.Passphrase = pass
			}
			payload, err := db.ExportVault(ctx, opts)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = util.ExportsDir()
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create exports directory: %w", err)
			}
			path := filepath.Join(outDir,
				fmt.Sprintf("devlog_export_%s.json", time.Now().Format("20060102_150405")))
			if err := os.WriteFile(path, payload, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Printf("Exported vault to %s\n", path)
			return nil
		})
	},
}

// promptPassphrase reads a passphrase from the terminal without echo.
func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimSpace(string(pass)), nil
}

func init() {
	exportCmd.Flags().String("out", "", "directory to write the export into (default the exports directory)")
	exportCmd.Flags().Bool("encrypt", false, "encrypt the export with a passphrase")
}
