package geo

import (
	"math"
	"strings"
	"testing"

	"tourli/internal/gazetteer"
	"tourli/internal/model"
)

func testConfig() model.ScoringConfig {
	return model.DefaultConfig().Scoring
}

func testRecords() []model.CityRecord {
	return []model.CityRecord{
		{Name: "Casablanca", ASCIIName: "Casablanca", Country: "Morocco", Lat: 33.5731, Lng: -7.5898, Population: 3359818},
		{Name: "Marrakech", ASCIIName: "Marrakech", Country: "Morocco", Lat: 31.6295, Lng: -7.9811, Population: 928850},
		{Name: "Rabat", ASCIIName: "Rabat", Country: "Morocco", Lat: 34.0209, Lng: -6.8416, Population: 577827},
		{Name: "Fès", ASCIIName: "Fes", Country: "Morocco", Lat: 34.0433, Lng: -5.0033, Population: 1150131},
		{Name: "Paris", ASCIIName: "Paris", Country: "France", Lat: 48.8567, Lng: 2.3522, Population: 11060000},
		{Name: "Tokyo", ASCIIName: "Tokyo", Country: "Japan", Lat: 35.6897, Lng: 139.6922, Population: 37732000},
	}
}

func newTestResolver() (*Resolver, *gazetteer.Gazetteer) {
	cfg := testConfig()
	gaz := gazetteer.New(testRecords(), cfg.MajorCityPopulation, cfg.CityFuzzyCutoff)
	return NewResolver(gaz, cfg), gaz
}

func TestHaversine(t *testing.T) {
	// same point
	if d := Haversine(34.0209, -6.8416, 34.0209, -6.8416); d > 1e-9 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// symmetry
	ab := Haversine(33.5731, -7.5898, 31.6295, -7.9811)
	ba := Haversine(31.6295, -7.9811, 33.5731, -7.5898)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("asymmetric distance: %f vs %f", ab, ba)
	}

	// Casablanca to Marrakech is roughly 220 km
	if ab < 200 || ab > 250 {
		t.Errorf("Casablanca-Marrakech = %f km, want ~220", ab)
	}
}

func TestResolveExactMatch(t *testing.T) {
	r, _ := newTestResolver()
	place, ok := r.Resolve("Casablanca")
	if !ok {
		t.Fatal("Casablanca should resolve")
	}
	if place.Score != 1.0 {
		t.Errorf("exact match score = %f, want 1.0", place.Score)
	}
	if place.Name != "Casablanca" {
		t.Errorf("resolved name = %q", place.Name)
	}
}

func TestResolveAccentedName(t *testing.T) {
	r, _ := newTestResolver()
	place, ok := r.Resolve("fes")
	if !ok {
		t.Fatal("fes should resolve via folded accents")
	}
	if place.Country != "Morocco" {
		t.Errorf("resolved country = %q, want Morocco", place.Country)
	}
}

func TestResolveFuzzyTypo(t *testing.T) {
	r, _ := newTestResolver()
	place, ok := r.Resolve("marrakesh")
	if !ok {
		t.Fatal("marrakesh should fuzzy-resolve")
	}
	if place.Name != "Marrakech" {
		t.Errorf("resolved %q, want Marrakech", place.Name)
	}
	if place.Score <= 0 || place.Score > 1 {
		t.Errorf("score %f out of (0,1]", place.Score)
	}
}

func TestResolveGarbage(t *testing.T) {
	r, _ := newTestResolver()
	if _, ok := r.Resolve("xqzvw"); ok {
		t.Error("garbage should not resolve")
	}
	if _, ok := r.Resolve(""); ok {
		t.Error("empty string should not resolve")
	}
}

func TestCityDistanceReplies(t *testing.T) {
	r, gaz := newTestResolver()
	d := NewDistancer(r, gaz, testConfig())

	if got := d.CityDistance("", "Rabat"); got != "Please provide two valid city names." {
		t.Errorf("empty city reply = %q", got)
	}

	if got := d.CityDistance("xqzvw", "Rabat"); got != "I couldn't identify that city, can you rephrase or specify the country?" {
		t.Errorf("unknown city reply = %q", got)
	}

	got := d.CityDistance("Casablanca", "Marrakech")
	if !strings.HasPrefix(got, "The distance between Casablanca and Marrakech is ") {
		t.Errorf("in-Morocco reply = %q", got)
	}
	if strings.Contains(got, "My main specialty") {
		t.Errorf("in-Morocco reply should have no specialty prefix: %q", got)
	}

	got = d.CityDistance("Casablanca", "Paris")
	if !strings.HasPrefix(got, "My main specialty is Morocco, but here is the information you requested: ") {
		t.Errorf("out-of-Morocco reply = %q", got)
	}
}

func TestCityDistanceThousandsSeparator(t *testing.T) {
	r, gaz := newTestResolver()
	d := NewDistancer(r, gaz, testConfig())

	got := d.CityDistance("Casablanca", "Tokyo")
	if !strings.Contains(got, ",") {
		t.Errorf("long distance should use thousands separators: %q", got)
	}
}

func TestExtractPlaces(t *testing.T) {
	r, gaz := newTestResolver()
	x := NewExtractor(r, gaz)

	tests := []struct {
		text string
		want []string
	}{
		{"How far is Casablanca from Marrakech?", []string{"Casablanca", "Marrakech"}},
		// canonical list scan runs before misspellings, so fes lands first
		{"distance between casa and fes", []string{"Fès", "Casablanca"}},
		{"from Paris to Tokyo", []string{"Paris", "Tokyo"}},
		{"how far away is Rabat", []string{"Rabat"}},
		{"no places here at all", nil},
	}
	for _, tt := range tests {
		places := x.ExtractPlaces(tt.text, 2)
		var names []string
		for _, p := range places {
			names = append(names, p.Name)
		}
		if len(names) != len(tt.want) {
			t.Errorf("ExtractPlaces(%q) = %v, want %v", tt.text, names, tt.want)
			continue
		}
		for i := range names {
			if names[i] != tt.want[i] {
				t.Errorf("ExtractPlaces(%q) = %v, want %v", tt.text, names, tt.want)
				break
			}
		}
	}
}

func TestExtractPlacesDeduplicates(t *testing.T) {
	r, gaz := newTestResolver()
	x := NewExtractor(r, gaz)

	places := x.ExtractPlaces("Rabat to Rabat", 2)
	if len(places) != 1 {
		t.Errorf("duplicate mention should collapse, got %d places", len(places))
	}
}
