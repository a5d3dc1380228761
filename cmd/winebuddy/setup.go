package main

import (
	"fmt"

	"github.com/jasondchambers/winebuddy/internal/config"
)

// printSetupInstructions tells a first-time user how to export their cellar
// from CellarTracker. Printed when neither the database nor the CSV exists;
// this is a not-configured state, not an error.
func printSetupInstructions(cfg config.Cellar) {
	fmt.Printf(`
WineBuddy Setup
===============

%s file not found.

To get started, you need to export your wine data from CellarTracker:

1. Go to CellarTracker: https://mobileapp.cellartracker.com
2. Log in to your account
3. Navigate to your cellar and click "Export"
4. Configure the export:
   - Include wines from ALL pages
   - Export Format: Comma Separated Values
   - Select these columns:
     Color, Category, Size, Currency, Value, Price, TotalQuantity,
     Quantity, Pending, Vintage, Wine, Locale, Producer, Varietal,
     Country, Region, SubRegion, BeginConsume, EndConsume, PScore, CScore
5. Download and save the file as %s in the current directory
6. Run winebuddy again
`, cfg.CSVPath, cfg.CSVPath)
}
