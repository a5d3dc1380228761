// Package query compiles filter requests into parameterized SQL. Every
// dynamically chosen identifier (sort column, discover column) is resolved
// through a closed whitelist map; user-supplied text only ever reaches the
// database as a bound parameter.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/jasondchambers/winebuddy/internal/cellar"
)

// SortField names a logical sort key accepted by the query command.
type SortField string

const (
	SortVintage  SortField = "vintage"
	SortProducer SortField = "producer"
	SortScore    SortField = "score"
	SortPrice    SortField = "price"
	SortWineName SortField = "wine_name"
)

// sortColumns maps each SortField to the column it orders by. This is the
// only place a sort column name is chosen; anything outside the map is a
// programming error, not user input.
var sortColumns = map[SortField]string{
	SortVintage:  "vintage",
	SortProducer: "producer",
	SortScore:    "professional_score",
	SortPrice:    "value",
	SortWineName: "wine_name",
}

// SortFields lists the accepted sort keys in display order.
var SortFields = []SortField{SortVintage, SortProducer, SortScore, SortPrice, SortWineName}

// ParseSortField validates raw flag text against the SortField enum.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if _, ok := sortColumns[f]; !ok {
		return "", fmt.Errorf("invalid sort field %q (valid: %s)", s, joinSortFields())
	}
	return f, nil
}

func joinSortFields() string {
	names := make([]string, len(SortFields))
	for i, f := range SortFields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Filter holds the optional criteria for one query invocation. String
// fields are unset when empty; pointer fields are unset when nil. It is
// built fresh per invocation and never persisted.
type Filter struct {
	Color    string // exact match
	Producer string // contains match
	Varietal string // contains match
	Country  string // exact match
	Region   string // contains match

	Vintage    *int
	VintageMin *int
	VintageMax *int
	ScoreMin   *float64

	InStock bool
	Ready   bool

	Sort  SortField // defaults to SortVintage
	Desc  bool
	Limit *int
}

// Compile translates the filter into a SELECT statement with ? placeholders
// and the matching parameter list. All predicates are ANDed. The current
// year for the ready window comes from now, evaluated once and bound twice.
// Compile never executes anything and cannot fail on a well-typed Filter;
// an out-of-whitelist sort field panics because it can only come from code.
func (f Filter) Compile(now time.Time) (string, []any) {
	var conds []string
	var params []any

	if f.Color != "" {
		conds = append(conds, "color = ?")
		params = append(params, f.Color)
	}
	if f.Producer != "" {
		conds = append(conds, "producer LIKE ?")
		params = append(params, "%"+f.Producer+"%")
	}
	if f.Varietal != "" {
		conds = append(conds, "varietal LIKE ?")
		params = append(params, "%"+f.Varietal+"%")
	}
	if f.Country != "" {
		conds = append(conds, "country = ?")
		params = append(params, f.Country)
	}
	if f.Region != "" {
		conds = append(conds, "region LIKE ?")
		params = append(params, "%"+f.Region+"%")
	}
	if f.Vintage != nil {
		conds = append(conds, "vintage = ?")
		params = append(params, *f.Vintage)
	}
	if f.VintageMin != nil {
		conds = append(conds, "vintage >= ?")
		params = append(params, *f.VintageMin)
	}
	if f.VintageMax != nil {
		conds = append(conds, "vintage <= ?")
		params = append(params, *f.VintageMax)
	}
	if f.ScoreMin != nil {
		conds = append(conds, "professional_score >= ?")
		params = append(params, *f.ScoreMin)
	}
	if f.InStock {
		conds = append(conds, "quantity > 0")
	}
	if f.Ready {
		year := now.Year()
		conds = append(conds,
			"begin_consume <= ?",
			"end_consume >= ?",
			"begin_consume != ?",
			"end_consume != ?",
		)
		params = append(params, year, year, cellar.WindowUnknown, cellar.WindowUnknown)
	}

	sql := "SELECT " + strings.Join(cellar.QueryColumns, ", ") + " FROM wines"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}

	sort := f.Sort
	if sort == "" {
		sort = SortVintage
	}
	col, ok := sortColumns[sort]
	if !ok {
		panic(fmt.Sprintf("query: sort field %q not in whitelist", sort))
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	sql += " ORDER BY " + col + " " + dir

	if f.Limit != nil {
		sql += " LIMIT ?"
		params = append(params, *f.Limit)
	}

	return sql, params
}
