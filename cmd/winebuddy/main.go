// Package main provides the winebuddy CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// cellarName overrides the default cellar file names for one invocation.
var cellarName string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "winebuddy",
	Short: "Query and filter wines from your cellar database",
	Long: `winebuddy is a CLI for querying a personal wine cellar.

It keeps your CellarTracker CSV export in a local SQLite database, built
lazily on first use, and answers filtered queries in table, JSON, or CSV
form. The database is read-only after load; re-export and run 'winebuddy
init' to refresh it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cellarName, "cellar-name", "",
		"Override default name for cellar files (useful for testing)")
	rootCmd.Version = Version
}
