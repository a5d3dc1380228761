package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasondchambers/winebuddy/internal/format"
	"github.com/jasondchambers/winebuddy/internal/query"
)

var (
	queryColor      string
	queryProducer   string
	queryVarietal   string
	queryCountry    string
	queryRegion     string
	queryVintage    int
	queryVintageMin int
	queryVintageMax int
	queryScoreMin   float64
	queryInStock    bool
	queryReady      bool
	querySort       string
	queryDesc       bool
	queryLimit      int
	queryFormat     string
)

func init() {
	f := queryCmd.Flags()
	f.StringVarP(&queryColor, "color", "c", "", "Filter by wine color (e.g., Red, White)")
	f.StringVarP(&queryProducer, "producer", "p", "", "Filter by producer (contains match)")
	f.StringVarP(&queryVarietal, "varietal", "v", "", "Filter by varietal (contains match)")
	f.StringVar(&queryCountry, "country", "", "Filter by country")
	f.StringVarP(&queryRegion, "region", "r", "", "Filter by region (contains match)")
	f.IntVar(&queryVintage, "vintage", 0, "Filter by exact vintage year")
	f.IntVar(&queryVintageMin, "vintage-min", 0, "Minimum vintage year")
	f.IntVar(&queryVintageMax, "vintage-max", 0, "Maximum vintage year")
	f.Float64Var(&queryScoreMin, "score-min", 0, "Minimum professional score")
	f.BoolVar(&queryInStock, "in-stock", false, "Only show wines with quantity > 0")
	f.BoolVar(&queryReady, "ready", false, "Only show wines within their drinking window")
	f.StringVarP(&querySort, "sort", "s", "vintage", "Sort by field (vintage, producer, score, price, wine_name)")
	f.BoolVarP(&queryDesc, "desc", "d", false, "Sort descending")
	f.IntVarP(&queryLimit, "limit", "l", 0, "Limit number of results")
	f.StringVarP(&queryFormat, "format", "f", "table", "Output format (table, json, csv)")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query wines from the cellar database with various filters",
	Long: `Query wines from the cellar database with various filters.

All filters combine with AND. Examples:
  winebuddy query --color Red --in-stock
  winebuddy query -p Ridge --vintage-min 2015 --sort score --desc
  winebuddy query --ready --format csv`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	sort, err := query.ParseSortField(querySort)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if queryFormat != "table" && queryFormat != "json" && queryFormat != "csv" {
		exitWithError(ExitError, "invalid format %q (valid: table, json, csv)", queryFormat)
	}
	if queryLimit < 0 {
		exitWithError(ExitError, "limit must be non-negative")
	}

	filter := query.Filter{
		Color:    queryColor,
		Producer: queryProducer,
		Varietal: queryVarietal,
		Country:  queryCountry,
		Region:   queryRegion,
		InStock:  queryInStock,
		Ready:    queryReady,
		Sort:     sort,
		Desc:     queryDesc,
	}
	// pflag can't tell an explicit zero from an unset flag, so check Changed
	// before treating numeric flags as criteria.
	flags := cmd.Flags()
	if flags.Changed("vintage") {
		filter.Vintage = &queryVintage
	}
	if flags.Changed("vintage-min") {
		filter.VintageMin = &queryVintageMin
	}
	if flags.Changed("vintage-max") {
		filter.VintageMax = &queryVintageMax
	}
	if flags.Changed("score-min") {
		filter.ScoreMin = &queryScoreMin
	}
	if flags.Changed("limit") {
		filter.Limit = &queryLimit
	}

	db := mustOpenCellar()
	defer db.Close()

	wines, err := db.Query(filter, time.Now())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	switch queryFormat {
	case "table":
		fmt.Println(format.Table(wines))
	case "json":
		out, err := format.JSON(wines)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		fmt.Println(out)
	case "csv":
		out, err := format.CSV(wines)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		fmt.Print(out)
	}

	return nil
}
