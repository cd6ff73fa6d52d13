// Package geo resolves free-form place names to coordinates and
// computes great-circle distances between them.
package geo

import (
	"tourli/internal/fuzzy"
	"tourli/internal/gazetteer"
	"tourli/internal/model"
	"tourli/internal/normalize"
)

// Resolver fuzzy-matches a place name to a single gazetteer record
// with a confidence score.
type Resolver struct {
	gaz *gazetteer.Gazetteer
	cfg model.ScoringConfig
}

// NewResolver creates a resolver over the given gazetteer
func NewResolver(gaz *gazetteer.Gazetteer, cfg model.ScoringConfig) *Resolver {
	return &Resolver{gaz: gaz, cfg: cfg}
}

// Resolve maps a place name to a ResolvedPlace.
//
// Exact normalized key matches score 1.0. Otherwise every record is
// scored by the better of its key and ascii-name similarity, with a
// bonus for Morocco rows when the query itself looks like a Moroccan
// city. Short queries use a stricter threshold because short names
// fuzzy-match almost anything. Major cities (population above the
// configured floor) are preferred over minor ones; within each pool the
// order is (score desc, population desc). A returned score below the
// city-match threshold signals low confidence to the caller.
func (r *Resolver) Resolve(placeName string) (model.ResolvedPlace, bool) {
	query := normalize.Normalize(placeName)
	if query == "" {
		return model.ResolvedPlace{}, false
	}

	if entry, ok := r.gaz.Lookup(query); ok {
		return placeFromEntry(entry, 1.0), true
	}

	_, isMoroccanLooking := r.gaz.DetectMoroccanCity(placeName)

	threshold := r.cfg.CityMatchThreshold
	if len(query) <= r.cfg.ShortQueryMaxLen {
		threshold = r.cfg.ShortQueryThreshold
	}

	var (
		bestMajor, bestMinor         gazetteer.Entry
		majorScore, minorScore       float64
		haveMajor, haveMinor         bool
	)
	for _, entry := range r.gaz.Entries() {
		score := fuzzy.Ratio(query, entry.Key)
		if s := fuzzy.Ratio(query, entry.NormASCII); s > score {
			score = s
		}
		if isMoroccanLooking && normalize.Normalize(entry.Record.Country) == "morocco" {
			score += r.cfg.MoroccoBoost
			if score > 1.0 {
				score = 1.0
			}
		}
		if score < threshold {
			continue
		}

		if entry.Record.Population >= r.cfg.MajorCityPopulation {
			if better(score, entry, majorScore, bestMajor, haveMajor) {
				bestMajor, majorScore, haveMajor = entry, score, true
			}
		} else {
			if better(score, entry, minorScore, bestMinor, haveMinor) {
				bestMinor, minorScore, haveMinor = entry, score, true
			}
		}
	}

	switch {
	case haveMajor:
		return placeFromEntry(bestMajor, majorScore), true
	case haveMinor:
		return placeFromEntry(bestMinor, minorScore), true
	default:
		return model.ResolvedPlace{}, false
	}
}

// better orders candidates by (score desc, population desc)
func better(score float64, e gazetteer.Entry, bestScore float64, best gazetteer.Entry, have bool) bool {
	if !have {
		return true
	}
	if score != bestScore {
		return score > bestScore
	}
	return e.Record.Population > best.Record.Population
}

func placeFromEntry(e gazetteer.Entry, score float64) model.ResolvedPlace {
	name := e.Record.Name
	if name == "" {
		name = e.Record.ASCIIName
	}
	return model.ResolvedPlace{
		Name:    name,
		Lat:     e.Record.Lat,
		Lng:     e.Record.Lng,
		Country: e.Record.Country,
		Score:   score,
	}
}
