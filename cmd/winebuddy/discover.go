package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasondchambers/winebuddy/internal/format"
	"github.com/jasondchambers/winebuddy/internal/query"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover distinct values in the cellar database",
}

// discoverCommands is the single source of truth for the discover verbs:
// each maps a subcommand name to its whitelisted field and display title.
var discoverCommands = []struct {
	name  string
	field query.DiscoverField
	title string
}{
	{"colors", query.DiscoverColor, "Colors"},
	{"producers", query.DiscoverProducer, "Producers"},
	{"varietals", query.DiscoverVarietal, "Varietals"},
	{"countries", query.DiscoverCountry, "Countries"},
	{"regions", query.DiscoverRegion, "Regions"},
	{"vintages", query.DiscoverVintage, "Vintages"},
}

func init() {
	for _, dc := range discoverCommands {
		dc := dc
		discoverCmd.AddCommand(&cobra.Command{
			Use:   dc.name,
			Short: fmt.Sprintf("List distinct %s in the cellar", strings.ToLower(dc.title)),
			RunE: func(cmd *cobra.Command, args []string) error {
				db := mustOpenCellar()
				defer db.Close()

				values, err := db.DistinctValues(dc.field)
				if err != nil {
					exitWithError(ExitError, "%v", err)
				}
				fmt.Println(format.ValuesList(dc.title, values))
				return nil
			},
		})
	}
	rootCmd.AddCommand(discoverCmd)
}
