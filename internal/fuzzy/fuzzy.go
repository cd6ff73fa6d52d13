// Package fuzzy wraps difflib's SequenceMatcher: a normalized
// common-subsequence similarity ratio in [0,1], not an edit distance.
package fuzzy

import "github.com/pmezard/go-difflib/difflib"

// Ratio returns the similarity ratio between a and b
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(explode(a), explode(b)).Ratio()
}

// BestMatch returns the candidate with the highest ratio against word,
// provided it clears the cutoff. Earlier candidates win ties, so callers
// control tie-breaking through slice order.
func BestMatch(word string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestRatio := 0.0
	for _, c := range candidates {
		if r := Ratio(word, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	if bestRatio >= cutoff && best != "" {
		return best, true
	}
	return "", false
}

// explode splits a string into per-rune elements so the matcher
// compares characters, not lines
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
