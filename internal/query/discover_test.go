package query

import "testing"

func TestDistinctSQL(t *testing.T) {
	got := DistinctSQL(DiscoverVintage)
	want := "SELECT DISTINCT vintage FROM wines WHERE vintage IS NOT NULL ORDER BY vintage"
	if got != want {
		t.Errorf("DistinctSQL(vintage) = %q, want %q", got, want)
	}
}

func TestDistinctSQL_AllWhitelistedFields(t *testing.T) {
	fields := []DiscoverField{
		DiscoverColor, DiscoverProducer, DiscoverVarietal,
		DiscoverCountry, DiscoverRegion, DiscoverVintage,
	}
	for _, f := range fields {
		got := DistinctSQL(f)
		if got == "" {
			t.Errorf("DistinctSQL(%q) returned empty query", f)
		}
	}
}

func TestDistinctSQL_UnknownFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-whitelist discover field")
		}
	}()
	DistinctSQL(DiscoverField("community_score"))
}
