package engine

import (
	"sort"
	"strings"

	"tourli/internal/fuzzy"
	"tourli/internal/model"
	"tourli/internal/tfidf"
)

// genericFallback replies for queries nothing in the corpus matches
var genericFallback = []string{
	"I'm not sure about that yet.",
	"Could you clarify your question?",
	"Sorry, I don't know that yet.",
}

// cannedIntents get a random matching corpus reply instead of ranking
var cannedIntents = map[string]bool{
	model.IntentGreeting:         true,
	model.IntentFarewell:         true,
	model.IntentJokeOrTroll:      true,
	model.IntentGreetingPersonal: true,
}

// excludedIntents never enter a ranking pool
var excludedIntents = map[string]bool{
	model.IntentGreeting:         true,
	model.IntentFarewell:         true,
	model.IntentIrrelevant:       true,
	model.IntentRudeOrAggressive: true,
}

// answerMoroccanCity ranks the corpus narrowed to one Moroccan city.
// The city filter only applies when it leaves candidates, same for the
// intent filter on top of it.
func (e *Engine) answerMoroccanCity(norm, city, detected string, topK int) []model.Answer {
	if a, ok := e.exactMatch(norm); ok {
		return []model.Answer{a}
	}
	if a, ok := e.cannedReply(detected); ok {
		return []model.Answer{a}
	}

	idxs := e.rankingPool()
	if narrowed := filterBy(idxs, func(i int) bool { return e.entries[i].NormCity == city }); len(narrowed) > 0 {
		idxs = narrowed
	}
	if detected != "" {
		if narrowed := filterBy(idxs, func(i int) bool { return e.entries[i].NormIntent == detected }); len(narrowed) > 0 {
			idxs = narrowed
		}
	}
	if len(idxs) == 0 {
		return e.fallbackReply()
	}

	scored := e.scoreBlended(norm, idxs, e.cfg.TFIDFWeight, e.cfg.FuzzyWeight, e.cfg.CandidateFloor)
	if len(scored) == 0 {
		return e.fallbackReply()
	}
	return topN(scored, topK)
}

// answerGeneralMorocco ranks only general_morocco entries, weighting
// TF-IDF higher and boosting candidates that share content words with
// the query. When nothing clears the floor the best TF-IDF match is
// returned anyway so a Morocco question never gets a shrug.
func (e *Engine) answerGeneralMorocco(norm, detected string, topK int) []model.Answer {
	if a, ok := e.exactMatch(norm); ok {
		return []model.Answer{a}
	}
	if a, ok := e.cannedReply(detected); ok {
		return []model.Answer{a}
	}

	var idxs []int
	for i := range e.entries {
		if e.entries[i].NormIntent == model.IntentGeneralMorocco {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return e.fallbackReply()
	}

	qVec := e.vec.Transform(norm)
	keyWords := contentWords(norm)

	var scored []model.Answer
	bestTFIDF, bestIdx := -1.0, idxs[0]
	for _, i := range idxs {
		ts := tfidf.Cosine(qVec, e.qVectors[i])
		if ts > bestTFIDF {
			bestTFIDF, bestIdx = ts, i
		}

		score := e.cfg.MoroccoTFIDFWeight*ts + e.cfg.MoroccoFuzzyWeight*fuzzy.Ratio(norm, e.entries[i].NormQuestion)
		if boost := e.keywordBoost(keyWords, e.entries[i].NormQuestion); boost > 0 {
			score *= 1 + boost
			if score > 1.0 {
				score = 1.0
			}
		}
		if score > e.cfg.MoroccoFloor {
			scored = append(scored, model.Answer{Text: e.entries[i].Assistant, Score: score})
		}
	}

	if len(scored) == 0 {
		if bestTFIDF < 0 {
			bestTFIDF = 0
		}
		return []model.Answer{{Text: e.entries[bestIdx].Assistant, Score: bestTFIDF}}
	}
	sortAnswers(scored)
	return topN(scored, topK)
}

// answerGeneric ranks the whole corpus, narrowed by intent when that
// leaves candidates. Always returns a single answer.
func (e *Engine) answerGeneric(norm, detected string, topK int) []model.Answer {
	if a, ok := e.exactMatch(norm); ok {
		return []model.Answer{a}
	}
	if a, ok := e.cannedReply(detected); ok {
		return []model.Answer{a}
	}

	idxs := e.rankingPool()
	if detected != "" {
		if narrowed := filterBy(idxs, func(i int) bool { return e.entries[i].NormIntent == detected }); len(narrowed) > 0 {
			idxs = narrowed
		}
	}
	if len(idxs) == 0 {
		return e.fallbackReply()
	}

	scored := e.scoreBlended(norm, idxs, e.cfg.TFIDFWeight, e.cfg.FuzzyWeight, e.cfg.CandidateFloor)
	if len(scored) == 0 {
		return e.fallbackReply()
	}
	return topN(scored, 1)
}

// exactMatch short-circuits when the normalized query equals a corpus
// question verbatim
func (e *Engine) exactMatch(norm string) (model.Answer, bool) {
	for i := range e.entries {
		if norm == e.entries[i].NormQuestion {
			return model.Answer{Text: e.entries[i].Assistant, Score: 1.0}, true
		}
	}
	return model.Answer{}, false
}

// cannedReply picks a random corpus reply for greeting-like intents
func (e *Engine) cannedReply(detected string) (model.Answer, bool) {
	if !cannedIntents[detected] {
		return model.Answer{}, false
	}
	var idxs []int
	for i := range e.entries {
		if e.entries[i].NormIntent == detected {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return model.Answer{}, false
	}
	return model.Answer{Text: e.entries[idxs[e.pick(len(idxs))]].Assistant, Score: 1.0}, true
}

// rankingPool returns every corpus index outside the excluded intents
func (e *Engine) rankingPool() []int {
	idxs := make([]int, 0, len(e.entries))
	for i := range e.entries {
		if !excludedIntents[e.entries[i].NormIntent] {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// scoreBlended scores candidates as tfidfW*cosine + fuzzyW*ratio and
// keeps those strictly above the floor, sorted best first
func (e *Engine) scoreBlended(norm string, idxs []int, tfidfW, fuzzyW, floor float64) []model.Answer {
	qVec := e.vec.Transform(norm)

	var scored []model.Answer
	for _, i := range idxs {
		score := tfidfW*tfidf.Cosine(qVec, e.qVectors[i]) + fuzzyW*fuzzy.Ratio(norm, e.entries[i].NormQuestion)
		if score > floor {
			scored = append(scored, model.Answer{Text: e.entries[i].Assistant, Score: score})
		}
	}
	sortAnswers(scored)
	return scored
}

// keywordBoost sums per-word bonuses for query content words appearing
// in the candidate question, capped so compounding keywords cannot run
// away
func (e *Engine) keywordBoost(keyWords []string, question string) float64 {
	var boost float64
	for _, w := range keyWords {
		if !strings.Contains(question, w) {
			continue
		}
		if len(w) > 6 {
			boost += e.cfg.KeywordBoostLong
		} else {
			boost += e.cfg.KeywordBoostShort
		}
	}
	if boost > e.cfg.KeywordBoostCap {
		boost = e.cfg.KeywordBoostCap
	}
	return boost
}

func (e *Engine) fallbackReply() []model.Answer {
	return []model.Answer{{Text: genericFallback[e.pick(len(genericFallback))], Score: 0.0}}
}

// boostStopWords are too common to count as content words
var boostStopWords = map[string]bool{
	"what": true, "are": true, "the": true, "a": true, "an": true,
	"is": true, "in": true, "of": true, "to": true, "for": true,
	"and": true, "or": true, "with": true, "on": true, "at": true,
	"by": true, "from": true, "main": true,
}

// contentWords returns the distinct query words longer than two
// characters that are not boost stopwords, in first-seen order
func contentWords(norm string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range strings.Fields(norm) {
		if len(w) <= 2 || boostStopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

func filterBy(idxs []int, keep func(int) bool) []int {
	var out []int
	for _, i := range idxs {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

// sortAnswers orders by score descending, preserving corpus order on ties
func sortAnswers(answers []model.Answer) {
	sort.SliceStable(answers, func(i, j int) bool { return answers[i].Score > answers[j].Score })
}

func topN(answers []model.Answer, n int) []model.Answer {
	if len(answers) > n {
		answers = answers[:n]
	}
	return answers
}
