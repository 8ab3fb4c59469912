package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Matcher scores the similarity of two strings in [0,1].
type Matcher interface {
	Ratio(a, b string) float64
}

// SequenceMatcher scores strings with difflib's sequence-matching ratio over
// their runes: 2*M/T where M is the number of matched runes and T the total.
// Identical strings score 1.0.
type SequenceMatcher struct{}

// Ratio implements Matcher.
func (SequenceMatcher) Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

// splitRunes splits a string into per-rune elements so the matcher compares
// characters rather than whole lines.
func splitRunes(s string) []string {
	return strings.Split(s, "")
}
