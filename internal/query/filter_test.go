package query

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jasondchambers/winebuddy/internal/cellar"
)

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestCompile_NoFilters(t *testing.T) {
	sql, params := Filter{}.Compile(testNow)

	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty filter should compile without WHERE, got: %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY vintage ASC") {
		t.Errorf("expected default sort, got: %s", sql)
	}
	if len(params) != 0 {
		t.Errorf("expected no params, got %v", params)
	}
	if !strings.HasPrefix(sql, "SELECT id, wine_name, vintage") {
		t.Errorf("expected query projection, got: %s", sql)
	}
}

func TestCompile_EqualityAndContainsFilters(t *testing.T) {
	f := Filter{Color: "Red", Producer: "Ridge", Country: "France", Region: "Rhone"}
	sql, params := f.Compile(testNow)

	for _, cond := range []string{"color = ?", "producer LIKE ?", "country = ?", "region LIKE ?"} {
		if !strings.Contains(sql, cond) {
			t.Errorf("missing condition %q in: %s", cond, sql)
		}
	}
	want := []any{"Red", "%Ridge%", "France", "%Rhone%"}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestCompile_Conjunction(t *testing.T) {
	min, max := 2015, 2020
	score := 90.0
	f := Filter{Color: "Red", VintageMin: &min, VintageMax: &max, ScoreMin: &score, InStock: true}
	sql, params := f.Compile(testNow)

	if got := strings.Count(sql, " AND "); got != 4 {
		t.Errorf("expected 4 ANDs joining 5 conditions, got %d in: %s", got, sql)
	}
	if strings.Contains(sql, " OR ") {
		t.Errorf("predicates must never use OR: %s", sql)
	}
	want := []any{"Red", 2015, 2020, 90.0}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestCompile_InStockTakesNoParam(t *testing.T) {
	sql, params := Filter{InStock: true}.Compile(testNow)

	if !strings.Contains(sql, "quantity > 0") {
		t.Errorf("missing in-stock condition in: %s", sql)
	}
	if len(params) != 0 {
		t.Errorf("in-stock binds no params, got %v", params)
	}
}

func TestCompile_Ready(t *testing.T) {
	sql, params := Filter{Ready: true}.Compile(testNow)

	for _, cond := range []string{"begin_consume <= ?", "end_consume >= ?", "begin_consume != ?", "end_consume != ?"} {
		if !strings.Contains(sql, cond) {
			t.Errorf("missing condition %q in: %s", cond, sql)
		}
	}
	want := []any{2026, 2026, cellar.WindowUnknown, cellar.WindowUnknown}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestCompile_SortWhitelist(t *testing.T) {
	cases := []struct {
		sort SortField
		want string
	}{
		{SortVintage, "ORDER BY vintage ASC"},
		{SortProducer, "ORDER BY producer ASC"},
		{SortScore, "ORDER BY professional_score ASC"},
		{SortPrice, "ORDER BY value ASC"},
		{SortWineName, "ORDER BY wine_name ASC"},
	}
	for _, c := range cases {
		sql, _ := Filter{Sort: c.sort}.Compile(testNow)
		if !strings.HasSuffix(sql, c.want) {
			t.Errorf("sort %q: expected suffix %q, got: %s", c.sort, c.want, sql)
		}
	}
}

func TestCompile_SortDescending(t *testing.T) {
	sql, _ := Filter{Sort: SortScore, Desc: true}.Compile(testNow)
	if !strings.HasSuffix(sql, "ORDER BY professional_score DESC") {
		t.Errorf("expected descending sort, got: %s", sql)
	}
}

func TestCompile_UnknownSortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-whitelist sort field")
		}
	}()
	Filter{Sort: SortField("id; DROP TABLE wines")}.Compile(testNow)
}

func TestCompile_LimitAppendedLast(t *testing.T) {
	limit := 2
	sql, params := Filter{Sort: SortScore, Desc: true, Limit: &limit}.Compile(testNow)

	if !strings.HasSuffix(sql, "ORDER BY professional_score DESC LIMIT ?") {
		t.Errorf("limit must follow the sort clause, got: %s", sql)
	}
	if params[len(params)-1] != 2 {
		t.Errorf("limit must be the last param, got %v", params)
	}
}

func TestCompile_NeverInterpolatesUserText(t *testing.T) {
	hostile := "x' OR '1'='1"
	sql, params := Filter{Producer: hostile}.Compile(testNow)

	if strings.Contains(sql, hostile) {
		t.Errorf("user text leaked into SQL: %s", sql)
	}
	if len(params) != 1 || params[0] != "%"+hostile+"%" {
		t.Errorf("expected hostile text bound as param, got %v", params)
	}
}

func TestParseSortField(t *testing.T) {
	if _, err := ParseSortField("score"); err != nil {
		t.Errorf("score should parse: %v", err)
	}
	if _, err := ParseSortField("community_score"); err == nil {
		t.Error("expected error for unknown sort field")
	}
}
