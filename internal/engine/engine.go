// Package engine ties corpus ranking, city detection, weather and
// distance handling into the answer decision tree.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"tourli/internal/gazetteer"
	"tourli/internal/geo"
	"tourli/internal/intent"
	"tourli/internal/model"
	"tourli/internal/normalize"
	"tourli/internal/tfidf"
)

// WeatherSource provides current conditions for a city. Errors mean "no
// live data" and are downgraded to a fallback reply, never surfaced.
type WeatherSource interface {
	Fetch(ctx context.Context, city string) (*model.Weather, error)
}

// Engine answers tourism questions over the loaded corpus
type Engine struct {
	cfg     model.ScoringConfig
	entries []model.CorpusEntry

	vec      *tfidf.Vectorizer
	qVectors []tfidf.Vector

	gaz        *gazetteer.Gazetteer
	resolver   *geo.Resolver
	extractor  *geo.Extractor
	distancer  *geo.Distancer
	classifier *intent.Classifier
	weather    WeatherSource

	// pick selects a random index in [0,n); injectable for tests
	pick func(n int) int

	verbose bool
}

// New builds an engine over the corpus and gazetteer. The corpus must
// be non-empty; the weather source may be nil when no API key is set.
func New(cfg *model.Config, entries []model.CorpusEntry, cities []model.CityRecord, weather WeatherSource) (*Engine, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("engine: no Q&A entries found")
	}

	for i := range entries {
		entries[i].NormQuestion = normalize.Normalize(entries[i].Question)
		entries[i].NormCity = normalize.Normalize(entries[i].City)
		entries[i].NormIntent = normalize.Normalize(entries[i].Intent)
	}

	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = e.NormQuestion
	}
	vec := tfidf.Fit(questions, cfg.Scoring.MaxVocabulary)
	qVectors := make([]tfidf.Vector, len(questions))
	for i, q := range questions {
		qVectors[i] = vec.Transform(q)
	}

	gaz := gazetteer.New(cities, cfg.Scoring.MajorCityPopulation, cfg.Scoring.CityFuzzyCutoff)
	resolver := geo.NewResolver(gaz, cfg.Scoring)

	return &Engine{
		cfg:        cfg.Scoring,
		entries:    entries,
		vec:        vec,
		qVectors:   qVectors,
		gaz:        gaz,
		resolver:   resolver,
		extractor:  geo.NewExtractor(resolver, gaz),
		distancer:  geo.NewDistancer(resolver, gaz, cfg.Scoring),
		classifier: intent.NewClassifier(cfg.Scoring),
		weather:    weather,
		pick:       rand.Intn,
	}, nil
}

// SetVerbose enables per-query detection logging on stderr
func (e *Engine) SetVerbose(v bool) { e.verbose = v }

// SetPick overrides the random index source
func (e *Engine) SetPick(pick func(n int) int) { e.pick = pick }

func (e *Engine) debugf(format string, args ...any) {
	if e.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Answer runs the decision tree for one user message and returns up to
// topK ranked answers, best first. Scores are confidences in [0,1].
//
// Priority order: weather and distance intents first, then Moroccan
// city queries, then world-city facts, then foreign-country redirects,
// then general Morocco ranking, then the generic corpus fallback.
func (e *Engine) Answer(ctx context.Context, text string, topK int) []model.Answer {
	if topK <= 0 {
		topK = 1
	}
	norm := normalize.Normalize(text)
	if norm == "" {
		return []model.Answer{{Text: "Please ask a question.", Score: 0.0}}
	}

	moroccanCity, globalCity := e.gaz.DetectCity(text)
	moroccoMentioned := e.gaz.MoroccoMentioned(text)
	country, countryFound := e.gaz.DetectCountry(text)
	detected := e.classifier.Classify(text)

	e.debugf("[engine] query=%q moroccan=%q global=%v morocco=%v country=%q intent=%q",
		text, moroccanCity, globalCity != nil, moroccoMentioned, country, detected)

	if detected == model.IntentAskWeather {
		return e.answerWeather(ctx, moroccanCity, globalCity)
	}
	if detected == model.IntentAskDistance {
		return e.answerDistance(text)
	}

	switch {
	case moroccanCity != "":
		return e.answerMoroccanCity(norm, moroccanCity, detected, topK)
	case globalCity != nil:
		return []model.Answer{{Text: FormatWorldCity(*globalCity), Score: 1.0}}
	case countryFound && country != "morocco":
		msg := fmt.Sprintf("I'm specialized in Morocco tourism, so %s is outside my expertise. But if you're interested in visiting Morocco instead, I'd be happy to help!",
			displayCountry(country))
		return []model.Answer{{Text: msg, Score: 0.3}}
	case moroccoMentioned:
		return e.answerGeneralMorocco(norm, detected, topK)
	default:
		return e.answerGeneric(norm, detected, topK)
	}
}
