// Package importer parses CellarTracker CSV exports into wine records.
package importer

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/jasondchambers/winebuddy/internal/cellar"
)

// Columns expects the exact header names CellarTracker writes. The reader
// maps them by name, so column order in the export doesn't matter.
var Columns = []string{
	"Color", "Category", "Size", "Currency", "Value", "Price",
	"TotalQuantity", "Quantity", "Pending", "Vintage", "Wine", "Locale",
	"Producer", "Varietal", "Country", "Region", "SubRegion",
	"BeginConsume", "EndConsume", "PScore", "CScore",
}

// ParseCellarTracker reads a CellarTracker CSV export into wine records.
// Exports are Latin-1 encoded, not UTF-8, so the reader is wrapped in a
// charmap decoder. Parsing is all-or-nothing: a malformed field fails the
// whole load with an error naming the row and field.
func ParseCellarTracker(r io.Reader) ([]cellar.Wine, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing CSV header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q in CSV header", col)
		}
	}

	var wines []cellar.Wine
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		row++
		if len(rec) < len(header) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", row, len(header), len(rec))
		}

		w, err := parseRow(func(col string) string { return rec[index[col]] })
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		wines = append(wines, w)
	}

	return wines, nil
}

// parseRow coerces one CSV row into a wine record. field looks cells up by
// header name.
func parseRow(field func(string) string) (cellar.Wine, error) {
	w := cellar.Wine{
		Color:    field("Color"),
		Category: field("Category"),
		Size:     field("Size"),
		Currency: field("Currency"),
		WineName: field("Wine"),
	}

	w.Locale = optionalString(field("Locale"))
	w.Producer = optionalString(field("Producer"))
	w.Varietal = optionalString(field("Varietal"))
	w.Country = optionalString(field("Country"))
	w.Region = optionalString(field("Region"))
	w.SubRegion = optionalString(field("SubRegion"))

	var err error
	if w.Value, err = optionalFloat(field("Value")); err != nil {
		return w, fmt.Errorf("invalid Value %q", field("Value"))
	}
	if w.Price, err = optionalFloat(field("Price")); err != nil {
		return w, fmt.Errorf("invalid Price %q", field("Price"))
	}
	if w.TotalQuantity, err = count(field("TotalQuantity")); err != nil {
		return w, fmt.Errorf("invalid TotalQuantity %q", field("TotalQuantity"))
	}
	if w.Quantity, err = count(field("Quantity")); err != nil {
		return w, fmt.Errorf("invalid Quantity %q", field("Quantity"))
	}
	if w.Pending, err = count(field("Pending")); err != nil {
		return w, fmt.Errorf("invalid Pending %q", field("Pending"))
	}
	if w.Vintage, err = vintage(field("Vintage")); err != nil {
		return w, fmt.Errorf("invalid Vintage %q", field("Vintage"))
	}
	if w.BeginConsume, err = optionalInt(field("BeginConsume")); err != nil {
		return w, fmt.Errorf("invalid BeginConsume %q", field("BeginConsume"))
	}
	if w.EndConsume, err = optionalInt(field("EndConsume")); err != nil {
		return w, fmt.Errorf("invalid EndConsume %q", field("EndConsume"))
	}
	if w.ProfessionalScore, err = optionalFloat(field("PScore")); err != nil {
		return w, fmt.Errorf("invalid PScore %q", field("PScore"))
	}
	if w.CommunityScore, err = optionalFloat(field("CScore")); err != nil {
		return w, fmt.Errorf("invalid CScore %q", field("CScore"))
	}

	return w, nil
}

// optionalString keeps empty text fields NULL rather than empty string.
func optionalString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// optionalFloat parses an optional decimal; empty means absent.
func optionalFloat(s string) (sql.NullFloat64, error) {
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}

// optionalInt parses an optional integer; empty means absent.
func optionalInt(s string) (sql.NullInt64, error) {
	if s == "" {
		return sql.NullInt64{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: v, Valid: true}, nil
}

// count parses a quantity column, defaulting empty to 0 to match the
// NOT NULL DEFAULT 0 schema.
func count(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// vintage parses the Vintage column, translating both emptiness and the
// non-vintage sentinel to absent so the literal sentinel is never stored.
func vintage(s string) (sql.NullInt64, error) {
	v, err := optionalInt(s)
	if err != nil {
		return sql.NullInt64{}, err
	}
	if v.Valid && v.Int64 == cellar.NonVintage {
		return sql.NullInt64{}, nil
	}
	return v, nil
}
