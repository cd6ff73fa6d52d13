// Package gazetteer builds the static city lookup tables and exposes
// Moroccan-city, global-city and country detection over free text.
package gazetteer

import (
	"sort"
	"strings"

	"tourli/internal/fuzzy"
	"tourli/internal/model"
	"tourli/internal/normalize"
)

// Entry is one deduplicated gazetteer row keyed by normalized name
type Entry struct {
	Key       string // normalized city name
	NormASCII string // normalized ascii_name, for fuzzy scoring
	Record    model.CityRecord
}

// Gazetteer owns the world-city mapping, the fixed Moroccan city list,
// and the country set derived from the city data. All state is built in
// New and read-only afterwards.
type Gazetteer struct {
	cities    map[string]Entry
	entries   []Entry  // sorted by key for deterministic scans
	countries []string // sorted, normalized

	moroccanSet map[string]bool
	majorCity   int // population floor for global-city detection
	fuzzyCutoff float64
}

// New deduplicates records that normalize to the same key, keeping the
// one with the larger population (ties keep the first seen), and
// derives the country set.
func New(records []model.CityRecord, majorCityPopulation int, fuzzyCutoff float64) *Gazetteer {
	g := &Gazetteer{
		cities:      make(map[string]Entry, len(records)),
		moroccanSet: make(map[string]bool, len(moroccanCities)),
		majorCity:   majorCityPopulation,
		fuzzyCutoff: fuzzyCutoff,
	}
	for _, c := range moroccanCities {
		g.moroccanSet[c] = true
	}

	countrySet := make(map[string]bool)
	for _, rec := range records {
		key := normalize.Normalize(rec.Name)
		if key == "" {
			continue
		}
		if country := normalize.Normalize(rec.Country); country != "" {
			countrySet[country] = true
		}

		existing, ok := g.cities[key]
		if !ok || rec.Population > existing.Record.Population {
			ascii := rec.ASCIIName
			if ascii == "" {
				ascii = rec.Name
			}
			g.cities[key] = Entry{
				Key:       key,
				NormASCII: normalize.Normalize(ascii),
				Record:    rec,
			}
		}
	}

	g.entries = make([]Entry, 0, len(g.cities))
	for _, e := range g.cities {
		g.entries = append(g.entries, e)
	}
	sort.Slice(g.entries, func(i, j int) bool { return g.entries[i].Key < g.entries[j].Key })

	g.countries = make([]string, 0, len(countrySet))
	for c := range countrySet {
		g.countries = append(g.countries, c)
	}
	sort.Strings(g.countries)

	return g
}

// Lookup returns the entry for an exact normalized key
func (g *Gazetteer) Lookup(key string) (Entry, bool) {
	e, ok := g.cities[key]
	return e, ok
}

// Entries returns all deduplicated rows in deterministic key order
func (g *Gazetteer) Entries() []Entry {
	return g.entries
}

// MoroccanCities returns the canonical Moroccan city list in
// declaration order
func (g *Gazetteer) MoroccanCities() []string {
	return moroccanCities
}

// Misspellings returns the alias table in declaration order
func (g *Gazetteer) Misspellings() []Misspelling {
	return moroccanMisspellings
}

// IsMoroccanCity reports membership of a normalized name in the fixed
// Moroccan city set
func (g *Gazetteer) IsMoroccanCity(normName string) bool {
	return g.moroccanSet[normName]
}

// DetectMoroccanCity finds a Moroccan city mention: misspellings first,
// then canonical whole-word matches, then per-word fuzzy matching for
// words of 4+ characters. Returns the canonical normalized name.
func (g *Gazetteer) DetectMoroccanCity(text string) (string, bool) {
	query := normalize.Normalize(text)
	if query == "" {
		return "", false
	}

	for _, m := range moroccanMisspellings {
		if normalize.ContainsWord(query, m.Alias) {
			return m.Canonical, true
		}
	}

	for _, city := range moroccanCities {
		if normalize.ContainsWord(query, city) {
			return city, true
		}
	}

	// Minimum 4 chars so "fes" is not conjured out of "festival"
	for _, word := range strings.Fields(query) {
		if len(word) < 4 {
			continue
		}
		if match, ok := fuzzy.BestMatch(word, moroccanCities, g.fuzzyCutoff); ok {
			return match, true
		}
	}

	return "", false
}

// DetectGlobalCity finds a non-Moroccan city by exact token matching
// against the gazetteer. No fuzzy step: fuzzy matching on the full
// world list turns ordinary words into city names. Only tokens of
// normalized length >= 4 whose record has a major-city population
// qualify; the highest-population candidate wins.
func (g *Gazetteer) DetectGlobalCity(text string) (model.CityRecord, bool) {
	var best model.CityRecord
	found := false

	for _, token := range strings.Fields(text) {
		word := normalize.Normalize(token)
		if len(word) < 4 {
			continue
		}
		entry, ok := g.cities[word]
		if !ok || entry.Record.Population < g.majorCity {
			continue
		}
		if !found || entry.Record.Population > best.Population {
			best = entry.Record
			found = true
		}
	}

	return best, found
}

// DetectCity runs Moroccan detection first; global detection is only
// attempted when no Moroccan city matched.
func (g *Gazetteer) DetectCity(text string) (string, *model.CityRecord) {
	if moroccan, ok := g.DetectMoroccanCity(text); ok {
		return moroccan, nil
	}
	if rec, ok := g.DetectGlobalCity(text); ok {
		return "", &rec
	}
	return "", nil
}

// DetectCountry scans the derived country set for whole-word (or
// whole-phrase) matches. If several countries match, the first
// non-morocco one in scan order wins.
func (g *Gazetteer) DetectCountry(text string) (string, bool) {
	query := normalize.Normalize(text)
	if query == "" {
		return "", false
	}

	var detected []string
	for _, country := range g.countries {
		if normalize.ContainsWord(query, country) {
			detected = append(detected, country)
		}
	}
	if len(detected) == 0 {
		return "", false
	}
	for _, c := range detected {
		if c != "morocco" {
			return c, true
		}
	}
	return detected[0], true
}

// MoroccoMentioned reports a whole-word "morocco" mention
func (g *Gazetteer) MoroccoMentioned(text string) bool {
	return normalize.ContainsWord(normalize.Normalize(text), "morocco")
}
