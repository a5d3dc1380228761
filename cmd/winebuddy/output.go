package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jasondchambers/winebuddy/internal/config"
	"github.com/jasondchambers/winebuddy/internal/storage"
)

// exitWithError writes an error message to stderr and exits with the code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// resolveCellar resolves the active cellar or exits.
func resolveCellar() config.Cellar {
	cfg, err := config.ResolveCellar(cellarName)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// mustOpenCellar resolves the active cellar and opens its database,
// building it from the CSV export on first use. When neither file exists
// it prints setup instructions and exits cleanly.
func mustOpenCellar() *storage.DB {
	cfg := resolveCellar()

	db, err := storage.EnsureReady(cfg)
	if errors.Is(err, storage.ErrNotConfigured) {
		printSetupInstructions(cfg)
		os.Exit(ExitSuccess)
	}
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return db
}
