// Package format renders query results for display. All renderers are pure
// functions of the rows they are given.
package format

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jasondchambers/winebuddy/internal/cellar"
)

// Table cell caps. Longer values are cut at the cap with no ellipsis.
const (
	nameMaxLen     = 40
	producerMaxLen = 20
	varietalMaxLen = 15
	regionMaxLen   = 15
)

var tableHeaders = []string{"Vintage", "Wine Name", "Producer", "Varietal", "Region", "Qty", "Score"}

// Table formats wines as an ASCII table: fixed columns, cells padded to the
// widest value or header, a dashed rule under the header, and a trailing
// count line.
func Table(wines []cellar.Wine) string {
	if len(wines) == 0 {
		return "No wines found."
	}

	rows := make([][]string, len(wines))
	for i, w := range wines {
		rows[i] = []string{
			vintageCell(w.Vintage),
			truncate(w.WineName, nameMaxLen),
			truncate(textCell(w.Producer), producerMaxLen),
			truncate(textCell(w.Varietal), varietalMaxLen),
			truncate(textCell(w.Region), regionMaxLen),
			strconv.Itoa(w.Quantity),
			scoreCell(w.ProfessionalScore),
		}
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var lines []string

	headerCells := make([]string, len(tableHeaders))
	ruleCells := make([]string, len(tableHeaders))
	for i, h := range tableHeaders {
		headerCells[i] = padRight(h, widths[i])
		ruleCells[i] = strings.Repeat("-", widths[i])
	}
	lines = append(lines, strings.Join(headerCells, " | "))
	lines = append(lines, strings.Join(ruleCells, "-+-"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(cell, widths[i])
		}
		lines = append(lines, strings.Join(cells, " | "))
	}

	lines = append(lines, "", fmt.Sprintf("%d wine(s) found.", len(wines)))
	return strings.Join(lines, "\n")
}

// record is the full query projection with JSON keys in projection order.
// Pointer fields render absent values as JSON null.
type record struct {
	ID                int64    `json:"id"`
	WineName          string   `json:"wine_name"`
	Vintage           *int64   `json:"vintage"`
	Producer          *string  `json:"producer"`
	Varietal          *string  `json:"varietal"`
	Color             string   `json:"color"`
	Country           *string  `json:"country"`
	Region            *string  `json:"region"`
	Subregion         *string  `json:"subregion"`
	Quantity          int      `json:"quantity"`
	Value             *float64 `json:"value"`
	ProfessionalScore *float64 `json:"professional_score"`
	BeginConsume      *int64   `json:"begin_consume"`
	EndConsume        *int64   `json:"end_consume"`
}

func toRecord(w cellar.Wine) record {
	return record{
		ID:                w.ID,
		WineName:          w.WineName,
		Vintage:           nullInt(w.Vintage),
		Producer:          nullString(w.Producer),
		Varietal:          nullString(w.Varietal),
		Color:             w.Color,
		Country:           nullString(w.Country),
		Region:            nullString(w.Region),
		Subregion:         nullString(w.SubRegion),
		Quantity:          w.Quantity,
		Value:             nullFloat(w.Value),
		ProfessionalScore: nullFloat(w.ProfessionalScore),
		BeginConsume:      nullInt(w.BeginConsume),
		EndConsume:        nullInt(w.EndConsume),
	}
}

// JSON formats wines as a pretty-printed JSON array over the full query
// projection.
func JSON(wines []cellar.Wine) (string, error) {
	records := make([]record, len(wines))
	for i, w := range wines {
		records[i] = toRecord(w)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data), nil
}

// CSV formats wines as delimited text: a header row naming the query
// projection columns, then one row per wine. Absent values become empty
// fields, which is how they survive a round trip back through a CSV reader.
// An empty result set formats as an empty string with no header.
func CSV(wines []cellar.Wine) (string, error) {
	if len(wines) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(cellar.QueryColumns); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	for _, wine := range wines {
		row := []string{
			strconv.FormatInt(wine.ID, 10),
			wine.WineName,
			intField(wine.Vintage),
			stringField(wine.Producer),
			stringField(wine.Varietal),
			wine.Color,
			stringField(wine.Country),
			stringField(wine.Region),
			stringField(wine.SubRegion),
			strconv.Itoa(wine.Quantity),
			floatField(wine.Value),
			floatField(wine.ProfessionalScore),
			intField(wine.BeginConsume),
			intField(wine.EndConsume),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing CSV: %w", err)
	}
	return buf.String(), nil
}

// ValuesList formats discovery output: a title with the value count, a
// dashed rule, and one indented value per line.
func ValuesList(title string, values []string) string {
	lines := []string{fmt.Sprintf("\n%s (%d):", title, len(values)), strings.Repeat("-", 40)}
	for _, v := range values {
		lines = append(lines, "  "+v)
	}
	return strings.Join(lines, "\n")
}

func vintageCell(v sql.NullInt64) string {
	if !v.Valid {
		return "NV"
	}
	return strconv.FormatInt(v.Int64, 10)
}

func textCell(s sql.NullString) string {
	if !s.Valid || s.String == "" {
		return "-"
	}
	return s.String
}

func scoreCell(f sql.NullFloat64) string {
	if !f.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f", f.Float64)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

func stringField(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func intField(n sql.NullInt64) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}

func floatField(f sql.NullFloat64) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'g', -1, 64)
}
