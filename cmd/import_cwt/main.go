// import_cwt moves a wallet from a legacy .cwt file into the sentinel
// database, re-sealed under the master key.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlexZinkM/sentinel/internal/config"
	"github.com/AlexZinkM/sentinel/internal/logger"
	"github.com/AlexZinkM/sentinel/internal/store"
	"github.com/AlexZinkM/sentinel/solana"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// newRootCmd builds the command; a fresh instance per call keeps tests isolated.
func newRootCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "import_cwt <file.cwt>",
		Short: "Import a legacy .cwt wallet into the sentinel database",
		Long: `Decrypts a wallet file written by the local wallet service and stores
its key sealed under the sentinel master key. Both passwords are read
from the terminal. The database location comes from SENTINEL_DATABASE_PATH.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var labelPtr *string
			if label != "" {
				labelPtr = &label
			}
			address, err := importCWT(cmd.Context(), args[0], labelPtr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "optional wallet label")
	return cmd
}

func importCWT(ctx context.Context, filePath string, label *string) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return "", err
	}
	defer log.Sync()

	db, err := store.NewSQLiteStore(ctx, cfg.DatabasePath, log)
	if err != nil {
		return "", err
	}
	defer db.Close()

	masterPassword, err := config.PromptForPassword("Master password: ")
	if err != nil {
		return "", err
	}
	manager, err := solana.Unlock(ctx, db, masterPassword)
	clear(masterPassword)
	if err != nil {
		return "", err
	}
	defer manager.Close()

	cwtPassword, err := config.PromptForPassword("Password of " + filePath + ": ")
	if err != nil {
		return "", err
	}
	defer clear(cwtPassword)

	record, err := manager.ImportCWT(ctx, db, filePath, cwtPassword, label)
	if err != nil {
		return "", err
	}

	log.Info("legacy wallet imported", zap.String("address", record.PublicKey))
	return record.PublicKey, nil
}
