package ops

import (
	"strings"
	"unicode/utf8"

	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
	"github.com/peteretelej/largefile/internal/search"
)

// SearchInput carries a search request. MaxResults <= 0 and a nil
// ContextLines fall back to the configured defaults; an explicit zero
// ContextLines disables context.
type SearchInput struct {
	Path         string
	Pattern      string
	Fuzzy        bool
	MaxResults   int
	ContextLines *int
}

// SearchResult is one hit with its surrounding context.
type SearchResult struct {
	LineNumber      int         `json:"line_number"`
	Match           string      `json:"match"`
	ContextBefore   []string    `json:"context_before"`
	ContextAfter    []string    `json:"context_after"`
	SimilarityScore float64     `json:"similarity_score"`
	MatchType       search.Kind `json:"match_type"`
	Truncated       bool        `json:"truncated"`
	Span            *search.Span `json:"span,omitempty"`
}

// SearchOutput is the capped result list. TotalMatches counts every hit
// before the cap, so callers can tell a full listing from a truncated one.
type SearchOutput struct {
	Path         string         `json:"path"`
	Pattern      string         `json:"pattern"`
	Results      []SearchResult `json:"results"`
	TotalMatches int            `json:"total_matches"`
	Truncated    bool           `json:"truncated"`
}

// Search reads the file once, matches, and decorates the hits with context
// lines from the same read. The result cap applies after exact and fuzzy
// matches are merged.
func Search(d *Deps, in SearchInput) (*SearchOutput, error) {
	if in.Pattern == "" {
		return nil, errors.NewInvalidRequest("search pattern must not be empty")
	}
	canonical, err := fileaccess.ResolvePath(in.Path)
	if err != nil {
		return nil, err
	}

	lines, err := d.Reader.ReadLines(canonical)
	if err != nil {
		return nil, errors.NewSearchFailed(canonical, err)
	}
	matches, err := d.Search.FindInLines(lines, in.Pattern, in.Fuzzy)
	if err != nil {
		return nil, err
	}

	maxResults := in.MaxResults
	if maxResults <= 0 {
		maxResults = d.Cfg.MaxSearchResults
	}
	if maxResults > MaxSearchLimit {
		maxResults = MaxSearchLimit
	}
	contextLines := d.Cfg.ContextLines
	if in.ContextLines != nil && *in.ContextLines >= 0 {
		contextLines = *in.ContextLines
	}

	total := len(matches)
	capped := matches
	if len(capped) > maxResults {
		capped = capped[:maxResults]
	}

	results := make([]SearchResult, 0, len(capped))
	for _, m := range capped {
		text, truncated := truncateLine(m.Content, d.Cfg.TruncateLength)
		results = append(results, SearchResult{
			LineNumber:      m.LineNumber,
			Match:           text,
			ContextBefore:   contextSlice(lines, m.LineNumber-1-contextLines, m.LineNumber-1),
			ContextAfter:    contextSlice(lines, m.LineNumber, m.LineNumber+contextLines),
			SimilarityScore: m.Score,
			MatchType:       m.Kind,
			Truncated:       truncated,
			Span:            m.Span,
		})
	}

	return &SearchOutput{
		Path:         canonical,
		Pattern:      in.Pattern,
		Results:      results,
		TotalMatches: total,
		Truncated:    total > len(results),
	}, nil
}

// contextSlice returns lines[from:to] with terminators stripped, clamped to
// the file's bounds. Indexes are 0-based.
func contextSlice(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}
	out := make([]string, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		out = append(out, strings.TrimRight(lines[i], "\r\n"))
	}
	return out
}

// truncateLine caps display text at maxRunes runes, appending a marker when
// the line was cut.
func truncateLine(line string, maxRunes int) (string, bool) {
	if maxRunes <= 0 || utf8.RuneCountInString(line) <= maxRunes {
		return line, false
	}
	runes := []rune(line)
	return string(runes[:maxRunes]) + "...[truncated]", true
}
