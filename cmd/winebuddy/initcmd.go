package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasondchambers/winebuddy/internal/storage"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Rebuild the cellar database from the CSV export",
	Long: `Rebuild the cellar database from the CSV export.

Discards any existing database and reloads every record from the export,
for picking up a fresh CellarTracker download.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := resolveCellar()

	db, n, err := storage.Rebuild(cfg)
	if errors.Is(err, storage.ErrNotConfigured) {
		printSetupInstructions(cfg)
		os.Exit(ExitSuccess)
	}
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	db.Close()

	fmt.Printf("Loaded %d wines into %s.\n", n, cfg.DBPath)
	return nil
}
