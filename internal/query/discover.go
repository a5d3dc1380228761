package query

import "fmt"

// DiscoverField names a column whose distinct values can be listed.
type DiscoverField string

const (
	DiscoverColor    DiscoverField = "color"
	DiscoverProducer DiscoverField = "producer"
	DiscoverVarietal DiscoverField = "varietal"
	DiscoverCountry  DiscoverField = "country"
	DiscoverRegion   DiscoverField = "region"
	DiscoverVintage  DiscoverField = "vintage"
)

// discoverColumns whitelists the columns open to distinct-value discovery.
// The command surface only ever passes the enumerated fields above, so a
// miss here is a programming error.
var discoverColumns = map[DiscoverField]string{
	DiscoverColor:    "color",
	DiscoverProducer: "producer",
	DiscoverVarietal: "varietal",
	DiscoverCountry:  "country",
	DiscoverRegion:   "region",
	DiscoverVintage:  "vintage",
}

// DistinctSQL returns the query listing the distinct non-NULL values of a
// whitelisted field in ascending order. It takes no user parameters; the
// column name comes from the closed map.
func DistinctSQL(field DiscoverField) string {
	col, ok := discoverColumns[field]
	if !ok {
		panic(fmt.Sprintf("query: discover field %q not in whitelist", field))
	}
	return fmt.Sprintf("SELECT DISTINCT %s FROM wines WHERE %s IS NOT NULL ORDER BY %s", col, col, col)
}
