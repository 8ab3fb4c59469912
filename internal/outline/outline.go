// Package outline extracts a coarse structural outline from file content.
// It is an optional capability: overview calls tolerate a missing or failing
// provider and degrade to an empty outline.
package outline

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Item is one structural element.
type Item struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	LineNumber int    `json:"line_number"`
	EndLine    int    `json:"end_line"`
	Children   []Item `json:"children"`
	LineCount  int    `json:"line_count"`
}

// Provider produces an outline for a file's content.
type Provider interface {
	Outline(path, content string) ([]Item, error)
}

type structurePattern struct {
	re  *regexp.Regexp
	typ string
}

// Per-language structure patterns, keyed by lowercase chroma lexer name.
// Items are flat: an element ends where the next one begins.
var languagePatterns = map[string][]structurePattern{
	"python": {
		{regexp.MustCompile(`^\s*class\s+(\w+)`), "class"},
		{regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)`), "function"},
	},
	"go": {
		{regexp.MustCompile(`^func\s+(?:\([^)]+\)\s+)?(\w+)`), "function"},
		{regexp.MustCompile(`^type\s+(\w+)`), "type"},
	},
	"javascript": {
		{regexp.MustCompile(`^\s*class\s+(\w+)`), "class"},
		{regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s*\*?\s*(\w+)`), "function"},
		{regexp.MustCompile(`^\s*(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?\(`), "function"},
	},
	"typescript": {
		{regexp.MustCompile(`^\s*(?:export\s+)?class\s+(\w+)`), "class"},
		{regexp.MustCompile(`^\s*(?:export\s+)?interface\s+(\w+)`), "interface"},
		{regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s*\*?\s*(\w+)`), "function"},
	},
	"markdown": {
		{regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`), "heading"},
	},
}

// PatternProvider builds outlines from per-language regex patterns, using
// chroma's lexer registry to identify the language from the file name.
type PatternProvider struct {
	budget time.Duration
}

// NewPatternProvider creates a provider with the given time budget per call.
// A zero budget disables the limit.
func NewPatternProvider(budget time.Duration) *PatternProvider {
	return &PatternProvider{budget: budget}
}

// Outline implements Provider. Unknown languages yield an empty outline.
// When the time budget runs out, the items found so far are returned.
func (p *PatternProvider) Outline(path, content string) ([]Item, error) {
	patterns, ok := languagePatterns[detectLanguage(path)]
	if !ok {
		return nil, nil
	}

	start := time.Now()
	lines := strings.Split(content, "\n")
	var items []Item
	for i, line := range lines {
		if p.budget > 0 && i%64 == 0 && time.Since(start) > p.budget {
			break
		}
		for _, sp := range patterns {
			m := sp.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			items = append(items, Item{
				Name:       m[1],
				Type:       sp.typ,
				LineNumber: i + 1,
			})
			break
		}
	}

	// An element runs until the next one starts.
	for i := range items {
		if i+1 < len(items) {
			items[i].EndLine = items[i+1].LineNumber - 1
		} else {
			items[i].EndLine = len(lines)
		}
		items[i].LineCount = items[i].EndLine - items[i].LineNumber + 1
	}
	return items, nil
}

func detectLanguage(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return strings.ToLower(lexer.Config().Name)
}
