package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tourli/internal/model"
)

var titleCaser = cases.Title(language.English)

// answerWeather fetches live conditions for the detected city. Fetch
// failures become a retry prompt, never an error.
func (e *Engine) answerWeather(ctx context.Context, moroccanCity string, globalCity *model.CityRecord) []model.Answer {
	city := moroccanCity
	prefix := ""
	if city == "" && globalCity != nil {
		city = globalCity.Name
		if city == "" {
			city = globalCity.ASCIIName
		}
		prefix = "I don't specialize outside Morocco, but here's the weather:\n"
	}
	if city == "" {
		return []model.Answer{{Text: "Sure! Which city do you want the weather for?", Score: 0.5}}
	}

	if e.weather == nil {
		return []model.Answer{{Text: "I couldn't find the weather for that city. Can you try another one?", Score: 0.5}}
	}
	w, err := e.weather.Fetch(ctx, city)
	if err != nil {
		e.debugf("[engine] weather lookup for %q failed: %v", city, err)
		return []model.Answer{{Text: "I couldn't find the weather for that city. Can you try another one?", Score: 0.5}}
	}

	reply := fmt.Sprintf("%sThe weather in %s right now:\n• %s\n• Temperature: %g°C\n• Humidity: %d%%\n• Wind: %g m/s",
		prefix, titleCaser.String(city), capitalizeFirst(w.Condition), w.Temperature, w.Humidity, w.WindSpeed)
	return []model.Answer{{Text: reply, Score: 1.0}}
}

// distanceSplitRe chops a distance query into candidate place chunks
// when extraction finds fewer than two cities
var distanceSplitRe = regexp.MustCompile(`(?i)between|and|to|from|,|;|\bvs\b`)

// answerDistance extracts two places and composes the distance reply.
// When extraction finds only one city the matched name is cut out of
// the text and the remainder re-scanned; the last resort splits on
// common delimiters and resolves each chunk.
func (e *Engine) answerDistance(text string) []model.Answer {
	text = strings.TrimSpace(text)
	found := e.extractor.ExtractPlaces(text, 2)

	if len(found) >= 2 {
		return []model.Answer{{Text: e.distancer.CityDistance(found[0].Name, found[1].Name), Score: 1.0}}
	}

	if len(found) == 1 {
		only := found[0]
		nameRe, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(only.Name))
		if err == nil {
			remaining := strings.TrimSpace(nameRe.ReplaceAllString(text, ""))
			if more := e.extractor.ExtractPlaces(remaining, 1); len(more) > 0 {
				return []model.Answer{{Text: e.distancer.CityDistance(only.Name, more[0].Name), Score: 1.0}}
			}
		}
	}

	var names []string
	for _, part := range distanceSplitRe.Split(text, -1) {
		if len(names) >= 2 {
			break
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if place, ok := e.resolver.Resolve(part); ok {
			names = append(names, place.Name)
		}
	}
	if len(names) >= 2 {
		return []model.Answer{{Text: e.distancer.CityDistance(names[0], names[1]), Score: 1.0}}
	}

	return []model.Answer{{Text: "I couldn't identify two cities in your request, can you rephrase or specify the countries?", Score: 0.5}}
}

// acronym country names stay uppercase in replies
var acronymCountries = map[string]bool{"usa": true, "uk": true}

func displayCountry(country string) string {
	if acronymCountries[country] {
		return strings.ToUpper(country)
	}
	return titleCaser.String(country)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
