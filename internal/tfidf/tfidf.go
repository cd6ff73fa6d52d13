// Package tfidf implements a small TF-IDF vectorizer over unigrams and
// bigrams with smoothed inverse document frequencies and L2-normalized
// sparse vectors.
package tfidf

import (
	"math"
	"sort"
	"strings"
)

// Vector is a sparse L2-normalized term-weight map
type Vector map[int]float64

// Vectorizer holds the fitted vocabulary and per-term IDF weights
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Fit builds the vocabulary from the given documents. Stopwords are
// dropped, unigrams and bigrams are counted, and when the candidate
// vocabulary exceeds maxVocabulary only the most frequent terms are
// kept (ties broken alphabetically). IDF uses the smoothed form
// ln((1+n)/(1+df)) + 1 so unseen terms never divide by zero.
func Fit(docs []string, maxVocabulary int) *Vectorizer {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)

	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		terms := extractTerms(doc)
		tokenized[i] = terms

		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			termFreq[t]++
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}

	terms := make([]string, 0, len(termFreq))
	for t := range termFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termFreq[terms[i]] != termFreq[terms[j]] {
			return termFreq[terms[i]] > termFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxVocabulary > 0 && len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// Transform maps a document to its sparse TF-IDF vector. Out-of-vocab
// terms are ignored; an empty result means no vocabulary overlap.
func (v *Vectorizer) Transform(doc string) Vector {
	counts := make(map[int]int)
	for _, t := range extractTerms(doc) {
		if idx, ok := v.vocab[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, len(counts))
	var sumSq float64
	for idx, count := range counts {
		w := float64(count) * v.idf[idx]
		vec[idx] = w
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors. Both sides are
// already unit length so this is a sparse dot product.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}

// extractTerms tokenizes on whitespace, drops single-character tokens
// and stopwords, and emits unigrams plus adjacent bigrams. Input is
// expected to be normalized.
func extractTerms(doc string) []string {
	var words []string
	for _, w := range strings.Fields(doc) {
		if len(w) < 2 || stopWords[w] {
			continue
		}
		words = append(words, w)
	}

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// stopWords is the usual English stopword list
var stopWords = func() map[string]bool {
	list := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by",
		"can", "did", "do", "does", "doing", "down", "during", "each",
		"few", "for", "from", "further", "had", "has", "have", "having",
		"he", "her", "here", "hers", "herself", "him", "himself", "his",
		"how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "ourselves", "out", "over", "own", "s", "same", "she",
		"should", "so", "some", "such", "t", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "we", "were", "what",
		"when", "where", "which", "while", "who", "whom", "why", "will",
		"with", "you", "your", "yours", "yourself", "yourselves",
	}
	m := make(map[string]bool, len(list))
	for _, w := range list {
		m[w] = true
	}
	return m
}()
