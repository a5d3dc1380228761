// Package storage manages the cellar SQLite database: schema creation,
// bulk loading from CSV exports, and query execution.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jasondchambers/winebuddy/internal/cellar"
	"github.com/jasondchambers/winebuddy/internal/query"
)

// DB wraps the SQLite connection for one cellar. A connection lives for a
// single command invocation.
type DB struct {
	db *sql.DB
}

// Open opens the cellar database at path, creating the file if needed.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

const winesSchema = `
	CREATE TABLE IF NOT EXISTS wines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		color TEXT NOT NULL,
		category TEXT NOT NULL,
		size TEXT NOT NULL,
		currency TEXT NOT NULL,
		value REAL,
		price REAL,
		total_quantity INTEGER NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 0,
		pending INTEGER NOT NULL DEFAULT 0,
		vintage INTEGER,
		wine_name TEXT NOT NULL,
		locale TEXT,
		producer TEXT,
		varietal TEXT,
		country TEXT,
		region TEXT,
		subregion TEXT,
		begin_consume INTEGER,
		end_consume INTEGER,
		professional_score REAL,
		community_score REAL
	)
`

// InitSchema creates the wines table.
func (d *DB) InitSchema() error {
	if _, err := d.db.Exec(winesSchema); err != nil {
		return fmt.Errorf("creating wines schema: %w", err)
	}
	return nil
}

// InsertWines inserts records in file order inside one transaction, so a
// failed load leaves nothing behind. Returns the number inserted.
func (d *DB) InsertWines(wines []cellar.Wine) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning insert transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO wines (
			color, category, size, currency, value, price,
			total_quantity, quantity, pending, vintage, wine_name,
			locale, producer, varietal, country, region, subregion,
			begin_consume, end_consume, professional_score, community_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing wines insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range wines {
		_, err := stmt.Exec(
			w.Color, w.Category, w.Size, w.Currency, w.Value, w.Price,
			w.TotalQuantity, w.Quantity, w.Pending, w.Vintage, w.WineName,
			w.Locale, w.Producer, w.Varietal, w.Country, w.Region, w.SubRegion,
			w.BeginConsume, w.EndConsume, w.ProfessionalScore, w.CommunityScore,
		)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting wine %q: %w", w.WineName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing wines insert: %w", err)
	}
	return len(wines), nil
}

// Query compiles the filter and returns the matching wines. now supplies
// the current year for the ready-to-drink window.
func (d *DB) Query(f query.Filter, now time.Time) ([]cellar.Wine, error) {
	stmt, params := f.Compile(now)
	rows, err := d.db.Query(stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("querying wines: %w", err)
	}
	defer rows.Close()

	return scanWines(rows)
}

// DistinctValues returns the sorted distinct non-NULL values of a
// whitelisted field. Numeric columns come back in their string form.
func (d *DB) DistinctValues(field query.DiscoverField) ([]string, error) {
	rows, err := d.db.Query(query.DistinctSQL(field))
	if err != nil {
		return nil, fmt.Errorf("querying distinct %s values: %w", field, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Count returns the total number of wines.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM wines").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// scanWines scans query-projection rows into wine records. Columns outside
// the projection stay zero.
func scanWines(rows *sql.Rows) ([]cellar.Wine, error) {
	var wines []cellar.Wine
	for rows.Next() {
		var w cellar.Wine
		err := rows.Scan(
			&w.ID, &w.WineName, &w.Vintage, &w.Producer, &w.Varietal,
			&w.Color, &w.Country, &w.Region, &w.SubRegion, &w.Quantity,
			&w.Value, &w.ProfessionalScore, &w.BeginConsume, &w.EndConsume,
		)
		if err != nil {
			return nil, err
		}
		wines = append(wines, w)
	}
	return wines, rows.Err()
}
