package gazetteer

import (
	"testing"

	"tourli/internal/model"
)

func testRecords() []model.CityRecord {
	return []model.CityRecord{
		{Name: "Casablanca", ASCIIName: "Casablanca", Country: "Morocco", Lat: 33.5731, Lng: -7.5898, Population: 3359818},
		{Name: "Marrakech", ASCIIName: "Marrakech", Country: "Morocco", Lat: 31.6295, Lng: -7.9811, Population: 928850},
		{Name: "Rabat", ASCIIName: "Rabat", Country: "Morocco", Lat: 34.0209, Lng: -6.8416, Population: 577827, Capital: "primary"},
		{Name: "Paris", ASCIIName: "Paris", Country: "France", Lat: 48.8567, Lng: 2.3522, Population: 11060000, Capital: "primary"},
		{Name: "Paris", ASCIIName: "Paris", Country: "United States", Lat: 33.6688, Lng: -95.5462, Population: 24171},
		{Name: "Tokyo", ASCIIName: "Tokyo", Country: "Japan", Lat: 35.6897, Lng: 139.6922, Population: 37732000, Capital: "primary"},
		{Name: "Smallville", ASCIIName: "Smallville", Country: "France", Lat: 1, Lng: 1, Population: 1200},
	}
}

func newTestGazetteer() *Gazetteer {
	return New(testRecords(), 50000, 0.75)
}

func TestDedupeKeepsLargerPopulation(t *testing.T) {
	g := newTestGazetteer()
	e, ok := g.Lookup("paris")
	if !ok {
		t.Fatal("paris missing from gazetteer")
	}
	if e.Record.Country != "France" {
		t.Errorf("dedupe kept %s Paris, want France", e.Record.Country)
	}
}

func TestDetectMoroccanCity(t *testing.T) {
	g := newTestGazetteer()
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"best beaches in Casablanca", "casablanca", true},
		{"beaches in casa", "casablanca", true},
		{"hotels in marakech", "marrakech", true},
		{"the fes festival", "fes", true},
		{"a festival somewhere", "", false},
		{"what about Tokyo", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := g.DetectMoroccanCity(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DetectMoroccanCity(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectGlobalCity(t *testing.T) {
	g := newTestGazetteer()

	rec, ok := g.DetectGlobalCity("what about Tokyo then")
	if !ok || rec.Name != "Tokyo" {
		t.Errorf("DetectGlobalCity(Tokyo) = %v, %v", rec.Name, ok)
	}

	// below the major-city population floor
	if _, ok := g.DetectGlobalCity("tell me about Smallville"); ok {
		t.Error("Smallville should not qualify as a major city")
	}

	// tokens shorter than 4 normalized chars never match
	if _, ok := g.DetectGlobalCity("fez"); ok {
		t.Error("3-char token should not match a global city")
	}
}

func TestDetectCityMoroccanPriority(t *testing.T) {
	g := newTestGazetteer()
	moroccan, global := g.DetectCity("flight from Casablanca to Paris")
	if moroccan != "casablanca" {
		t.Errorf("moroccan = %q, want casablanca", moroccan)
	}
	if global != nil {
		t.Error("global city should be suppressed when a Moroccan city matches")
	}
}

func TestDetectCountry(t *testing.T) {
	g := newTestGazetteer()

	c, ok := g.DetectCountry("what do you know about Japan?")
	if !ok || c != "japan" {
		t.Errorf("DetectCountry(Japan) = %q, %v", c, ok)
	}

	// morocco loses to any other detected country
	c, ok = g.DetectCountry("is France nicer than Morocco?")
	if !ok || c != "france" {
		t.Errorf("DetectCountry(France vs Morocco) = %q, %v", c, ok)
	}

	c, ok = g.DetectCountry("tell me about Morocco")
	if !ok || c != "morocco" {
		t.Errorf("DetectCountry(Morocco) = %q, %v", c, ok)
	}

	if _, ok := g.DetectCountry("nothing geographic here"); ok {
		t.Error("DetectCountry should find nothing")
	}
}

func TestMoroccoMentioned(t *testing.T) {
	g := newTestGazetteer()
	if !g.MoroccoMentioned("Tell me about Morocco!") {
		t.Error("whole-word morocco mention missed")
	}
	if g.MoroccoMentioned("moroccan rugs") {
		t.Error("\"moroccan\" should not count as a morocco mention")
	}
}
