// Package normalize canonicalizes free text for matching: everything the
// engine compares has been through Normalize first, so word-boundary
// checks reduce to space-delimited containment.
package normalize

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// NFD + strip combining marks + NFC folds accented letters to ASCII
	foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	possessiveRe = regexp.MustCompile(`'s\b`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases, folds accents to base ASCII letters, drops a
// trailing possessive marker, strips everything that is neither
// alphanumeric nor whitespace, and collapses runs of whitespace.
// Total for any input and idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}
	text = possessiveRe.ReplaceAllString(text, "")
	text = nonAlnumRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var (
	lemmaOnce sync.Once
	lemma     *golem.Lemmatizer
)

// Lemmatize maps each whitespace token of normalized text through the
// English dictionary lemmatizer. Unknown tokens pass through unchanged.
func Lemmatize(text string) string {
	lemmaOnce.Do(func() {
		l, err := golem.New(en.New())
		if err == nil {
			lemma = l
		}
	})
	if lemma == nil || text == "" {
		return text
	}

	words := strings.Fields(text)
	for i, w := range words {
		words[i] = lemma.Lemma(w)
	}
	return strings.Join(words, " ")
}

// ContainsWord reports whether phrase occurs in text on word boundaries.
// Both arguments must already be normalized, so boundaries are spaces.
func ContainsWord(text, phrase string) bool {
	if text == "" || phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}
