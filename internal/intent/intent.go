// Package intent classifies user messages into the fixed category set
// used for corpus narrowing and branch selection.
package intent

import (
	"strings"

	"tourli/internal/fuzzy"
	"tourli/internal/model"
	"tourli/internal/normalize"
)

// trigger holds the precomputed match forms of one phrase
type trigger struct {
	norm  string
	lemma string
}

type category struct {
	name     string
	triggers []trigger
}

// Classifier matches normalized text against the rule table. Troll
// detection runs first, then distance and weather, then the remaining
// categories in table order.
type Classifier struct {
	categories []category
	byName     map[string][]trigger

	trollCutoff float64
	fuzzyCutoff float64
}

// shorthand expansions applied before re-matching, so "how 2 get" and
// "best food n casablanca" still classify
var shorthand = strings.NewReplacer(
	" 2 ", " to ",
	" n ", " in ",
	" cn ", " can ",
)

// NewClassifier precomputes normalized and lemmatized trigger forms
func NewClassifier(cfg model.ScoringConfig) *Classifier {
	c := &Classifier{
		byName:      make(map[string][]trigger, len(rules)),
		trollCutoff: cfg.TrollFuzzyCutoff,
		fuzzyCutoff: cfg.IntentFuzzyCutoff,
	}
	for _, r := range rules {
		cat := category{name: r.Category, triggers: make([]trigger, 0, len(r.Triggers))}
		for _, t := range r.Triggers {
			norm := normalize.Normalize(t)
			if norm == "" {
				continue
			}
			cat.triggers = append(cat.triggers, trigger{norm: norm, lemma: normalize.Lemmatize(norm)})
		}
		c.categories = append(c.categories, cat)
		c.byName[r.Category] = cat.triggers
	}
	return c
}

// query carries the precomputed match forms of one user message
type query struct {
	norm        string
	lemma       string
	expanded    string
	expandedLem string
}

// Classify returns the matched category name, or "" when nothing fires.
//
// joke_or_troll outranks everything so "tell me a joke about beaches"
// never becomes a beach question. Distance and weather come next since
// their phrasings ("how far", "how warm") collide with many other
// categories. The rest match in table order against the plain text, the
// shorthand-expanded text, and the lemmatized text; a full-string fuzzy
// ratio above the cutoff also counts, which catches near-equal short
// queries like "distanse".
func (c *Classifier) Classify(text string) string {
	norm := normalize.Normalize(text)
	if norm == "" {
		return ""
	}
	expanded := strings.TrimSpace(shorthand.Replace(" " + norm + " "))
	q := query{
		norm:        norm,
		lemma:       normalize.Lemmatize(norm),
		expanded:    expanded,
		expandedLem: normalize.Lemmatize(expanded),
	}

	for _, t := range c.byName[model.IntentJokeOrTroll] {
		if c.matchPlain(q, t, c.trollCutoff) {
			return model.IntentJokeOrTroll
		}
	}
	for _, priority := range []string{model.IntentAskDistance, model.IntentAskWeather} {
		for _, t := range c.byName[priority] {
			if c.matchPlain(q, t, c.fuzzyCutoff) {
				return priority
			}
		}
	}

	for _, cat := range c.categories {
		switch cat.name {
		case model.IntentJokeOrTroll, model.IntentAskDistance, model.IntentAskWeather:
			continue
		}
		for _, t := range cat.triggers {
			if c.matches(q, t, c.fuzzyCutoff) {
				return cat.name
			}
		}
	}
	return ""
}

// matchPlain checks one trigger against the plain and lemmatized query
// forms: whole-word containment, then a strict full-string fuzzy
// comparison. The priority passes use only this.
func (c *Classifier) matchPlain(q query, t trigger, cutoff float64) bool {
	if normalize.ContainsWord(q.norm, t.norm) || normalize.ContainsWord(q.lemma, t.lemma) {
		return true
	}
	return fuzzy.Ratio(q.norm, t.norm) > cutoff
}

// matches additionally tries the shorthand-expanded forms, for the
// in-order categories
func (c *Classifier) matches(q query, t trigger, cutoff float64) bool {
	if c.matchPlain(q, t, cutoff) {
		return true
	}
	if normalize.ContainsWord(q.expanded, t.norm) || normalize.ContainsWord(q.expandedLem, t.lemma) {
		return true
	}
	return fuzzy.Ratio(q.expanded, t.norm) > cutoff
}
