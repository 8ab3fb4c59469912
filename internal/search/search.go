// Package search locates text in files by exact substring and, optionally,
// similarity-scored approximate matching.
package search

import (
	"sort"
	"strings"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

// Kind classifies how a match was found.
type Kind string

const (
	KindExact Kind = "exact"
	KindFuzzy Kind = "fuzzy"
	KindNone  Kind = "none"
)

// Span marks the matched byte offsets within a line.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is a single search hit.
type Match struct {
	LineNumber int     `json:"line_number"` // 1-based
	Content    string  `json:"content"`     // line with terminator stripped
	Score      float64 `json:"similarity_score"`
	Kind       Kind    `json:"match_type"`
	Span       *Span   `json:"span,omitempty"` // exact matches only
}

// Engine scans file lines for matches. The matcher may be nil, which
// disables fuzzy matching.
type Engine struct {
	reader    *fileaccess.Reader
	matcher   Matcher
	threshold float64
}

// NewEngine creates a search engine using the configured fuzzy threshold.
func NewEngine(reader *fileaccess.Reader, matcher Matcher, cfg *config.Config) *Engine {
	return &Engine{reader: reader, matcher: matcher, threshold: cfg.FuzzyThreshold}
}

// Find reads the file and returns matches for the pattern. Exact matches are
// always computed; fuzzy matches are added when requested. The merged result
// is ordered by line number, then by descending score. Truncation to a
// result cap is the caller's job so exact matches are never starved.
func (e *Engine) Find(path, pattern string, fuzzy bool) ([]Match, error) {
	lines, err := e.reader.ReadLines(path)
	if err != nil {
		return nil, errors.NewSearchFailed(path, err)
	}
	return e.FindInLines(lines, pattern, fuzzy)
}

// FindInLines matches against lines already in hand, sparing a re-read when
// the caller needs the lines for context as well.
func (e *Engine) FindInLines(lines []string, pattern string, fuzzy bool) ([]Match, error) {
	exact := findExact(lines, pattern)
	if !fuzzy {
		return exact, nil
	}
	if e.matcher == nil {
		return nil, errors.NewFuzzyUnavailable()
	}
	return merge(exact, e.findFuzzy(lines, pattern)), nil
}

// findExact records the first occurrence of the pattern per line,
// case-sensitively. Exact matches always score 1.0.
func findExact(lines []string, pattern string) []Match {
	var matches []Match
	for i, line := range lines {
		idx := strings.Index(line, pattern)
		if idx < 0 {
			continue
		}
		matches = append(matches, Match{
			LineNumber: i + 1,
			Content:    stripEOL(line),
			Score:      1.0,
			Kind:       KindExact,
			Span:       &Span{Start: idx, End: idx + len(pattern)},
		})
	}
	return matches
}

// findFuzzy scores every line against the pattern and keeps those at or
// above the threshold.
func (e *Engine) findFuzzy(lines []string, pattern string) []Match {
	var matches []Match
	for i, line := range lines {
		score := e.matcher.Ratio(pattern, strings.TrimSpace(line))
		if score < e.threshold {
			continue
		}
		matches = append(matches, Match{
			LineNumber: i + 1,
			Content:    stripEOL(line),
			Score:      score,
			Kind:       KindFuzzy,
		})
	}
	return matches
}

// merge combines exact and fuzzy matches. A line present in both sets keeps
// only its exact entry.
func merge(exact, fuzzy []Match) []Match {
	exactLines := make(map[int]bool, len(exact))
	for _, m := range exact {
		exactLines[m.LineNumber] = true
	}

	combined := make([]Match, 0, len(exact)+len(fuzzy))
	combined = append(combined, exact...)
	for _, m := range fuzzy {
		if !exactLines[m.LineNumber] {
			combined = append(combined, m)
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		if combined[i].LineNumber != combined[j].LineNumber {
			return combined[i].LineNumber < combined[j].LineNumber
		}
		return combined[i].Score > combined[j].Score
	})
	return combined
}

func stripEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
