// Package cellar defines the wine record schema shared by storage, query
// compilation, and output formatting.
package cellar

import "database/sql"

// Sentinel values used by CellarTracker exports. NonVintage appears in the
// raw Vintage column of non-vintage wines and is translated to NULL at
// import time. WindowUnknown marks an unknown drinking window; it is stored
// as-is and must be excluded by any ready-to-drink predicate.
const (
	NonVintage    = 1001
	WindowUnknown = 9999
)

// QueryColumns is the projection returned by cellar queries, in output
// order. The JSON and CSV formatters render exactly these columns.
var QueryColumns = []string{
	"id",
	"wine_name",
	"vintage",
	"producer",
	"varietal",
	"color",
	"country",
	"region",
	"subregion",
	"quantity",
	"value",
	"professional_score",
	"begin_consume",
	"end_consume",
}

// Wine is one row of the wines table. IDs are assigned by SQLite on insert
// and never reused. Optional columns use sql.Null types so that NULL stays
// distinct from zero; records are immutable once loaded.
type Wine struct {
	ID                int64
	Color             string
	Category          string
	Size              string
	Currency          string
	Value             sql.NullFloat64
	Price             sql.NullFloat64
	TotalQuantity     int
	Quantity          int
	Pending           int
	Vintage           sql.NullInt64
	WineName          string
	Locale            sql.NullString
	Producer          sql.NullString
	Varietal          sql.NullString
	Country           sql.NullString
	Region            sql.NullString
	SubRegion         sql.NullString
	BeginConsume      sql.NullInt64
	EndConsume        sql.NullInt64
	ProfessionalScore sql.NullFloat64
	CommunityScore    sql.NullFloat64
}
