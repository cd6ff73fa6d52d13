package geo

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tourli/internal/gazetteer"
	"tourli/internal/model"
	"tourli/internal/normalize"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between
// two coordinates
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// km formats distances with thousands separators and one decimal
var km = message.NewPrinter(language.English)

// Distancer turns two city names into a user-facing distance reply
type Distancer struct {
	resolver *Resolver
	gaz      *gazetteer.Gazetteer
	cfg      model.ScoringConfig
}

// NewDistancer creates a Distancer sharing the resolver's gazetteer
func NewDistancer(resolver *Resolver, gaz *gazetteer.Gazetteer, cfg model.ScoringConfig) *Distancer {
	return &Distancer{resolver: resolver, gaz: gaz, cfg: cfg}
}

// CityDistance resolves both names and composes the reply text. A
// resolution miss asks for clarification; a low-confidence match asks
// for confirmation instead of guessing; a pair outside Morocco gets an
// out-of-specialty prefix.
func (d *Distancer) CityDistance(cityA, cityB string) string {
	if cityA == "" || cityB == "" {
		return "Please provide two valid city names."
	}

	placeA, okA := d.resolver.Resolve(cityA)
	if !okA {
		return "I couldn't identify that city, can you rephrase or specify the country?"
	}
	placeB, okB := d.resolver.Resolve(cityB)
	if !okB {
		return "I couldn't identify that city, can you rephrase or specify the country?"
	}

	if placeA.Score < d.cfg.CityMatchThreshold {
		return fmt.Sprintf("I'm not sure which city you mean. Did you mean %s?", displayName(placeA))
	}
	if placeB.Score < d.cfg.CityMatchThreshold {
		return fmt.Sprintf("I'm not sure which city you mean. Did you mean %s?", displayName(placeB))
	}

	dist := Haversine(placeA.Lat, placeA.Lng, placeB.Lat, placeB.Lng)
	distStr := km.Sprintf("%.1f", dist)

	reply := fmt.Sprintf("The distance between %s and %s is %s km.", placeA.Name, placeB.Name, distStr)
	if !d.inMorocco(placeA) || !d.inMorocco(placeB) {
		return "My main specialty is Morocco, but here is the information you requested: " + reply
	}
	return reply
}

// inMorocco checks the record's country field, falling back to the
// fixed Moroccan city set for rows with a blank country
func (d *Distancer) inMorocco(p model.ResolvedPlace) bool {
	if normalize.Normalize(p.Country) == "morocco" {
		return true
	}
	return d.gaz.IsMoroccanCity(normalize.Normalize(p.Name))
}

func displayName(p model.ResolvedPlace) string {
	if p.Country == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Country)
}
