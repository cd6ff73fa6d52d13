package gazetteer

// Canonical Moroccan cities, already in normalized form. This is an
// ordered slice, not a set: "first match wins" rules below depend on
// declaration order being stable.
var moroccanCities = []string{
	"agadir", "al hoceima", "azrou", "beni mellal", "berkane",
	"casablanca", "chefchaouen", "dakhla", "el jadida", "errachidia",
	"essaouira", "fes", "guelmim", "ifrane", "kenitra",
	"khouribga", "laayoune", "larache", "marrakech", "martil",
	"meknes", "mohammedia", "nador", "ouarzazate", "oujda",
	"rabat", "safi", "sale", "tangier", "tetouan",
	"tiznit", "taroudant", "tata", "tanger med", "sidi ifni",
}

// Misspelling is an alias mapped to its canonical Moroccan city
type Misspelling struct {
	Alias     string
	Canonical string
}

// Common misspellings and abbreviations, checked before the canonical
// list so "casa" resolves to casablanca instead of fuzzy-matching
// something else. Ordered for deterministic first-match-wins.
var moroccanMisspellings = []Misspelling{
	{"casa", "casablanca"},
	{"cali", "casablanca"},
	{"mkech", "marrakech"},
	{"marrakch", "marrakech"},
	{"marakech", "marrakech"},
	{"marakesh", "marrakech"},
	{"fesss", "fes"},
	{"ksablanka", "casablanca"},
	{"casablanka", "casablanca"},
	{"agdir", "agadir"},
	{"agad", "agadir"},
	{"rabay", "rabat"},
	{"tangr", "tangier"},
	{"tanger", "tangier"},
}
