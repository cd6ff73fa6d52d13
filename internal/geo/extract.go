package geo

import (
	"regexp"
	"strings"

	"tourli/internal/gazetteer"
	"tourli/internal/model"
	"tourli/internal/normalize"
)

var (
	betweenRe = regexp.MustCompile(`(?i)between\s+(.+?)\s+and\s+(.+)`)
	fromToRe  = regexp.MustCompile(`(?i)from\s+(.+?)\s+to\s+(.+)`)
	tokenRe   = regexp.MustCompile(`[\p{L}\p{N}-]+`)
)

// Words too common to ever be a city on their own; skipped for
// single-token n-grams only (multi-token phrases still get a chance)
var extractStopWords = map[string]bool{
	"whats": true, "what": true, "hows": true, "how": true, "the": true,
	"is": true, "are": true, "and": true, "or": true, "to": true,
	"from": true, "between": true, "distance": true, "far": true,
	"away": true, "where": true, "which": true, "when": true, "can": true,
	"will": true, "does": true, "did": true, "do": true, "about": true,
	"for": true, "as": true, "with": true, "at": true, "in": true,
	"on": true, "by": true, "of": true, "an": true, "a": true,
	"km": true, "kilometers": true, "miles": true, "you": true,
	"me": true, "him": true, "her": true,
}

const maxNgram = 4

// Extractor finds up to N place mentions in free text for distance
// queries. Moroccan cities take priority over everything else.
type Extractor struct {
	resolver *Resolver
	gaz      *gazetteer.Gazetteer
}

// NewExtractor creates an extractor over the given resolver
func NewExtractor(resolver *Resolver, gaz *gazetteer.Gazetteer) *Extractor {
	return &Extractor{resolver: resolver, gaz: gaz}
}

// ExtractPlaces returns up to maxCount resolved places in discovery
// order, deduplicated by normalized display name. The cascade stops as
// soon as enough places are found: Moroccan list scan, misspelling
// scan, "between A and B" / "from A to B" patterns, then n-gram
// scanning from 4-token phrases down to single words.
func (x *Extractor) ExtractPlaces(text string, maxCount int) []model.ResolvedPlace {
	if strings.TrimSpace(text) == "" || maxCount <= 0 {
		return nil
	}

	var found []model.ResolvedPlace
	textNorm := normalize.Normalize(text)

	seen := func(name string) bool {
		norm := normalize.Normalize(name)
		for _, f := range found {
			if normalize.Normalize(f.Name) == norm {
				return true
			}
		}
		return false
	}
	add := func(place model.ResolvedPlace) {
		if !seen(place.Name) {
			found = append(found, place)
		}
	}

	// 1. Canonical Moroccan cities, whole-word
	for _, city := range x.gaz.MoroccanCities() {
		if len(found) >= maxCount {
			return found[:maxCount]
		}
		if normalize.ContainsWord(textNorm, city) {
			if place, ok := x.resolver.Resolve(city); ok {
				add(place)
			}
		}
	}

	// 2. Misspellings resolved through their canonical form
	for _, m := range x.gaz.Misspellings() {
		if len(found) >= maxCount {
			break
		}
		if normalize.ContainsWord(textNorm, m.Alias) {
			if place, ok := x.resolver.Resolve(m.Canonical); ok {
				add(place)
			}
		}
	}
	if len(found) >= maxCount {
		return found[:maxCount]
	}

	// 3. "between A and B" / "from A to B"
	m := betweenRe.FindStringSubmatch(text)
	if m == nil {
		m = fromToRe.FindStringSubmatch(text)
	}
	if m != nil {
		for _, candidate := range []string{m[1], m[2]} {
			if len(found) >= maxCount {
				break
			}
			candidate = strings.Trim(candidate, ` "'`)
			if place, ok := x.resolver.Resolve(candidate); ok {
				add(place)
			}
		}
	}
	if len(found) >= maxCount {
		return found[:maxCount]
	}

	// 4. N-gram scan, longest phrases first. A resolving n-gram
	// consumes its token span so overlapping shorter n-grams are
	// not retried.
	cleaned := strings.NewReplacer("'", " ", `"`, " ").Replace(text)
	tokens := tokenRe.FindAllString(cleaned, -1)

	maxN := maxNgram
	if len(tokens) < maxN {
		maxN = len(tokens)
	}
	consumed := make(map[int]bool)
	for n := maxN; n >= 1 && len(found) < maxCount; n-- {
		for i := 0; i+n <= len(tokens) && len(found) < maxCount; i++ {
			if spanConsumed(consumed, i, n) {
				continue
			}
			phrase := strings.Join(tokens[i:i+n], " ")
			if len(phrase) < 2 {
				continue
			}
			if n == 1 && extractStopWords[strings.ToLower(phrase)] {
				continue
			}
			place, ok := x.resolver.Resolve(phrase)
			if !ok || seen(place.Name) {
				continue
			}
			add(place)
			for j := i; j < i+n; j++ {
				consumed[j] = true
			}
		}
	}

	if len(found) > maxCount {
		found = found[:maxCount]
	}
	return found
}

func spanConsumed(consumed map[int]bool, i, n int) bool {
	for j := i; j < i+n; j++ {
		if consumed[j] {
			return true
		}
	}
	return false
}
