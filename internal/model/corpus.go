package model

// CorpusEntry is one question/answer record from the tourism corpus.
// The Norm* fields are derived once at engine construction and never
// mutated afterwards.
type CorpusEntry struct {
	Question  string `json:"question"`
	Assistant string `json:"assistant"`
	City      string `json:"city,omitempty"`   // optional Moroccan city tag
	Intent    string `json:"intent,omitempty"` // category tag

	NormQuestion string `json:"-"`
	NormCity     string `json:"-"`
	NormIntent   string `json:"-"`
}

// Answer is one ranked reply. Score is a confidence in [0,1]; callers
// apply their own threshold to decide whether to present Text verbatim.
type Answer struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Intent categories that get immediate canned replies instead of ranking
const (
	IntentGreeting         = "greeting"
	IntentGreetingPersonal = "greeting_personal"
	IntentFarewell         = "farewell"
	IntentJokeOrTroll      = "joke_or_troll"
	IntentRudeOrAggressive = "rude_or_aggressive"
	IntentIrrelevant       = "irrelevant_question"
	IntentAskWeather       = "ask_weather"
	IntentAskDistance      = "ask_distance"
	IntentGeneralMorocco   = "general_morocco"
)
