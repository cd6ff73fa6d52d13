package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tourli/internal/model"
)

var popPrinter = message.NewPrinter(language.English)

// FormatWorldCity builds the fact sheet shown for non-Moroccan cities:
// a short apology, up to five facts, and a nudge back toward Morocco.
func FormatWorldCity(city model.CityRecord) string {
	name := city.Name
	if name == "" {
		name = city.ASCIIName
	}
	if name == "" {
		name = "Unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sorry, %s is not in Morocco so it's not my specialty.\n", name)
	fmt.Fprintf(&b, "But here's what I found about %s:\n", name)

	var facts []string
	if city.Country != "" {
		facts = append(facts, fmt.Sprintf("- Country: %s", city.Country))
	}
	if city.Population > 0 {
		facts = append(facts, popPrinter.Sprintf("- Population: %d", city.Population))
	}
	if city.AdminName != "" {
		facts = append(facts, fmt.Sprintf("- Located in: %s", city.AdminName))
	}
	if city.Capital != "" && !strings.EqualFold(city.Capital, "admin") {
		facts = append(facts, fmt.Sprintf("- Capital: %s", capitalizeFirst(city.Capital)))
	}
	facts = append(facts, fmt.Sprintf("- Coordinates: %.2f, %.2f", city.Lat, city.Lng))

	if len(facts) > 5 {
		facts = facts[:5]
	}
	for _, f := range facts {
		b.WriteString(f + "\n")
	}

	b.WriteString("\nIf you want, I can help you explore amazing Moroccan cities instead!")
	return b.String()
}
