package intent

// Rule is one intent category with its trigger phrases. Declaration
// order matters: outside the three priority categories, the first
// category with a matching trigger wins.
type Rule struct {
	Category string
	Triggers []string
}

var rules = []Rule{
	{"greeting", []string{"hello", "hi", "hey", "salam", "greetings", "yo", "good morning", "good evening"}},
	{"greeting_personal", []string{"how are you", "how's it going", "what's up", "how have you been"}},
	{"farewell", []string{"bye", "goodbye", "see you", "later", "take care"}},
	{"small_talk", []string{"how's life", "nice weather", "what's new", "how are things"}},
	{"joke_or_troll", []string{"joke", "funny", "make me laugh", "prank", "tagine swim"}},
	{"rude_or_aggressive", []string{"shut up", "stupid", "idiot", "annoying", "dumb"}},
	{"ask_beaches", []string{"beach", "swim", "sand", "ocean", "sea", "sunbathe", "coast", "shore", "swimming spot"}},
	{"ask_surfing", []string{"surf", "surfing", "waves", "board", "learn to surf"}},
	{"ask_waterfalls", []string{"waterfall", "cascade", "swimming spot", "hike to waterfall", "nature water"}},
	{"ask_food", []string{"food", "eat", "hungry", "meal", "snack", "what to eat", "fud", "find food", "eating", "cuisine"}},
	{"ask_restaurants", []string{"restaurant", "dining", "place to eat", "where to eat", "cafe", "seafood", "beach restaurants"}},
	{"ask_local_dishes", []string{"local dish", "bastilla", "Moroccan food", "specialty"}},
	{"ask_bars", []string{"bar", "pub", "alcohol", "drink", "cocktail", "wine", "beer"}},
	{"ask_clubs", []string{"club", "nightclub", "party", "dance", "DJ", "disco"}},
	{"ask_nightlife", []string{"nightlife", "party", "evening fun", "after dark", "night entertainment"}},
	{"ask_hotels", []string{"hotel", "stay", "accommodation", "lodging", "inn", "where to sleep"}},
	{"ask_riads", []string{"riad", "guesthouse", "traditional house", "Moroccan stay"}},
	{"ask_cheap_hotels", []string{"cheap hotel", "budget stay", "hostel", "low cost lodging"}},
	{"ask_landmarks", []string{"landmark", "monument", "must see", "historic site", "famous place", "old medinas", "medina", "places to visit"}},
	{"ask_attractions", []string{"attraction", "sight", "tourist spot"}},
	{"ask_museums", []string{"museum", "art gallery", "history museum", "exhibit", "cultural site"}},
	{"ask_nature", []string{"nature", "park", "garden", "natural site", "green area", "outdoors", "mountains", "explore"}},
	{"ask_parks", []string{"park", "botanical garden", "playground", "open space", "nature park"}},
	{"ask_hiking", []string{"hike", "trek", "trail", "mountain walk", "nature walk", "adventure hike"}},
	{"ask_things_to_do", []string{"activities", "fun things", "things to do", "what to do", "cool", "fun", "something to do", "what to see", "famous to see"}},
	{"ask_activities", []string{"activity", "experience", "adventure", "excursion", "recreational activity"}},
	{"ask_family_activities", []string{"kids", "child-friendly", "family fun", "children activity"}},
	{"ask_kid_friendly", []string{"kids", "child-friendly", "safe for children", "family-friendly"}},
	{"ask_transport", []string{"transport", "get around", "travel", "moving around", "how to go", "commute"}},
	{"ask_taxi", []string{"taxi", "cab", "ride", "grab a taxi", "hire transport"}},
	{"ask_public_transport", []string{"bus", "train", "metro", "tram", "public transport", "local transport"}},
	{"ask_airport", []string{"airport", "flight", "departure", "arrival", "plane"}},
	{"ask_weather", []string{"weather", "forecast", "rain", "sunny", "temperature", "climate", "how warm", "how cold", "weather conditions"}},
	{"ask_distance", []string{"distance", "how far", "how far is", "kilometers", "kilometres", "km", "miles", "how many km", "distance between", "how far from"}},
	{"ask_temperature", []string{"temperature", "hot", "cold", "degrees", "how warm", "how cold", "warm"}},
	{"ask_safe_areas", []string{"safe", "security", "dangerous areas", "crime", "unsafe place"}},
	{"ask_scams", []string{"scam", "trick", "fraud", "cheat", "avoid scams"}},
	{"ask_safety", []string{"safety", "safe travel", "is it safe"}},
	{"ask_shopping", []string{"shopping", "buy", "mall", "store", "souvenir"}},
	{"ask_souks", []string{"souk", "bazaar", "traditional market", "artisan market", "handicraft"}},
	{"ask_markets", []string{"market", "best markets", "markets", "local market", "food market"}},
	{"ask_culture", []string{"culture", "tradition", "customs", "heritage", "local culture"}},
	{"ask_history", []string{"history", "heritage", "historical site", "old city", "past events"}},
	{"ask_festivals", []string{"festival", "celebration", "event", "cultural festival", "holiday"}},
	{"ask_best_time", []string{"best time", "season", "when to visit", "ideal time"}},
	{"ask_family", []string{"family", "travel with kids", "family-friendly", "with children"}},
	{"general_morocco", []string{"Morocco info", "country info", "overview", "general info", "Morocco guide", "about Morocco", "something about Morocco"}},
	{"irrelevant_question", []string{"random", "irrelevant", "off-topic", "not related"}},
}
