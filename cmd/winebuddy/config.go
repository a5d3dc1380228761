package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasondchambers/winebuddy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set global configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the global configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.LoadGlobal()
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		fmt.Printf("default-cellar: %s\n", orUnset(global.DefaultCellar))
		fmt.Printf("data-dir: %s\n", orUnset(global.DataDir))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a global configuration value",
	Long: `Set a global configuration value.

Keys:
  default-cellar   Cellar name used when --cellar-name is not given
  data-dir         Directory holding the .db and .csv files`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.LoadGlobal()
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "default-cellar":
			global.DefaultCellar = value
		case "data-dir":
			global.DataDir = value
		default:
			exitWithError(ExitError, "unknown config key %q (valid: default-cellar, data-dir)", key)
		}

		if err := global.Save(); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		fmt.Printf("Set %s to %s\n", key, value)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
