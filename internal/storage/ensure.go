package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/jasondchambers/winebuddy/internal/config"
	"github.com/jasondchambers/winebuddy/internal/importer"
)

// ErrNotConfigured reports that neither the database nor the CSV export
// exists for the requested cellar. Callers print setup guidance and exit
// cleanly rather than treating it as a failure.
var ErrNotConfigured = errors.New("cellar not configured")

// EnsureReady opens the cellar database, building it from the CSV export
// the first time. Returns ErrNotConfigured when neither file exists.
func EnsureReady(cfg config.Cellar) (*DB, error) {
	if _, err := os.Stat(cfg.DBPath); err == nil {
		return Open(cfg.DBPath)
	}

	if _, err := os.Stat(cfg.CSVPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("checking CSV export: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Database not found. Initializing from CSV...")
	db, n, err := loadFromCSV(cfg)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "Successfully loaded %d wines into the database.\n\n", n)
	return db, nil
}

// Rebuild discards any existing database and reloads it from the CSV
// export. Returns ErrNotConfigured when the export is missing.
func Rebuild(cfg config.Cellar) (*DB, int, error) {
	if err := os.Remove(cfg.DBPath); err != nil && !os.IsNotExist(err) {
		return nil, 0, fmt.Errorf("removing old database: %w", err)
	}

	if _, err := os.Stat(cfg.CSVPath); err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNotConfigured
		}
		return nil, 0, fmt.Errorf("checking CSV export: %w", err)
	}

	db, n, err := loadFromCSV(cfg)
	return db, n, err
}

// loadFromCSV parses the whole export before touching the database, then
// creates the schema and inserts every record in one transaction. Any
// failure removes the database file so the next run starts from scratch.
func loadFromCSV(cfg config.Cellar) (*DB, int, error) {
	f, err := os.Open(cfg.CSVPath)
	if err != nil {
		return nil, 0, fmt.Errorf("opening CSV export: %w", err)
	}
	defer f.Close()

	wines, err := importer.ParseCellarTracker(f)
	if err != nil {
		return nil, 0, fmt.Errorf("loading %s: %w", cfg.CSVPath, err)
	}

	db, err := Open(cfg.DBPath)
	if err != nil {
		return nil, 0, err
	}
	if err := db.InitSchema(); err != nil {
		db.Close()
		os.Remove(cfg.DBPath)
		return nil, 0, err
	}
	n, err := db.InsertWines(wines)
	if err != nil {
		db.Close()
		os.Remove(cfg.DBPath)
		return nil, 0, err
	}
	return db, n, nil
}
