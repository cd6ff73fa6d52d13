package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tourli/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEntries(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[
		{"question": "Best beaches in Agadir?", "assistant": "Try Taghazout.", "city": "Agadir", "intent": "ask_beaches"}
	]`)
	b := writeFile(t, dir, "b.json", `[
		{"question": "hello", "assistant": "Hi! Ask me about Morocco.", "intent": "greeting"}
	]`)

	entries, err := LoadEntries([]string{a, b})
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}

	want := []model.CorpusEntry{
		{Question: "Best beaches in Agadir?", Assistant: "Try Taghazout.", City: "Agadir", Intent: "ask_beaches"},
		{Question: "hello", Assistant: "Hi! Ask me about Morocco.", Intent: "greeting"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEntriesEmpty(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.json", `[]`)

	if _, err := LoadEntries([]string{empty}); err == nil {
		t.Error("empty corpus should be an error")
	}
}

func TestLoadEntriesMissingFile(t *testing.T) {
	if _, err := LoadEntries([]string{"/nonexistent/corpus.json"}); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestLoadCities(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "cities.csv",
		"city,city_ascii,lat,lng,country,iso2,iso3,admin_name,capital,population\n"+
			"Casablanca,Casablanca,33.5731,-7.5898,Morocco,MA,MAR,Casablanca-Settat,admin,3359818.0\n"+
			"Fès,Fes,34.0433,-5.0033,Morocco,MA,MAR,Fès-Meknès,admin,1150131\n"+
			",missing name row,1,1,Nowhere,,,,,\n")

	records, err := LoadCities(csv)
	if err != nil {
		t.Fatalf("LoadCities: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (nameless row skipped)", len(records))
	}

	casa := records[0]
	if casa.Name != "Casablanca" || casa.Country != "Morocco" {
		t.Errorf("unexpected first record: %+v", casa)
	}
	if casa.Population != 3359818 {
		t.Errorf("float population parsed to %d, want 3359818", casa.Population)
	}
	if casa.Lat != 33.5731 || casa.Lng != -7.5898 {
		t.Errorf("coordinates = %f, %f", casa.Lat, casa.Lng)
	}

	if records[1].Name != "Fès" || records[1].ASCIIName != "Fes" {
		t.Errorf("accented record = %+v", records[1])
	}
}

func TestLoadCitiesBadPopulation(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "cities.csv",
		"city,lat,lng,country,population\n"+
			"Ghosttown,1.0,2.0,Nowhere,not-a-number\n")

	records, err := LoadCities(csv)
	if err != nil {
		t.Fatalf("LoadCities: %v", err)
	}
	if len(records) != 1 || records[0].Population != 0 {
		t.Errorf("bad population should parse to 0, got %+v", records)
	}
}
