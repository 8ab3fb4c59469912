// Package edit performs search/replace mutations with mandatory backups,
// dry-run previews, and atomic writes.
package edit

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"

	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
	"github.com/peteretelej/largefile/internal/search"
)

// MaxTextLength caps search and replacement text.
const MaxTextLength = 10000

// Result describes the outcome of a replace call.
type Result struct {
	Success        bool    `json:"success"`
	Preview        string  `json:"preview"`
	ChangesMade    int     `json:"changes_made"`
	LineNumber     int     `json:"line_number"`
	SimilarityUsed float64 `json:"similarity_used"`
	MatchType      string  `json:"match_type"`
	BackupCreated  string  `json:"backup_created,omitempty"`
}

// Engine locates a target occurrence and replaces it. Location uses the same
// matching logic as search: exact first, fuzzy fallback when enabled.
type Engine struct {
	reader  *fileaccess.Reader
	search  *search.Engine
	backups *BackupStore
	log     zerolog.Logger
}

// NewEngine creates an edit engine.
func NewEngine(reader *fileaccess.Reader, searchEngine *search.Engine, backups *BackupStore, log zerolog.Logger) *Engine {
	return &Engine{reader: reader, search: searchEngine, backups: backups, log: log}
}

// Replace finds searchText in the file and substitutes replaceText.
//
// Exact occurrences replace only the matched substring, up to
// maxReplacements times. When no exact occurrence exists and fuzzy is
// enabled, the single best-scoring line is replaced wholesale with
// replaceText — a deliberate asymmetry: approximate location cannot pin down
// a substring boundary, so the whole line is the unit of replacement.
//
// With preview true the call performs no filesystem mutation. Otherwise a
// backup is written first; any backup failure aborts the edit before the
// atomic write.
func (e *Engine) Replace(path, searchText, replaceText string, fuzzy, preview bool, maxReplacements int) (*Result, error) {
	if err := validate(searchText, replaceText); err != nil {
		return nil, err
	}
	if maxReplacements <= 0 {
		maxReplacements = 1
	}

	content, err := e.reader.Read(path)
	if err != nil {
		return nil, err
	}

	newContent, res := e.locate(content, searchText, replaceText, fuzzy, maxReplacements)
	res.Preview = renderPreview(path, content, newContent)

	if !res.Success || preview {
		return res, nil
	}

	backupPath, err := e.backups.Backup(path)
	if err != nil {
		return nil, err
	}

	enc, err := e.reader.DetectEncoding(path)
	if err != nil {
		return nil, errors.NewEditFailed(path, err)
	}
	if err := fileaccess.WriteFile(path, newContent, enc); err != nil {
		return nil, errors.NewEditFailed(path, err)
	}

	res.BackupCreated = backupPath
	e.log.Info().
		Str("path", path).
		Int("changes", res.ChangesMade).
		Int("line", res.LineNumber).
		Str("match_type", res.MatchType).
		Str("backup", backupPath).
		Msg("edit committed")
	return res, nil
}

func validate(searchText, replaceText string) error {
	if searchText == "" {
		return errors.NewInvalidRequest("search_text is required")
	}
	if searchText == replaceText {
		return errors.NewInvalidRequest("search_text and replace_text are identical")
	}
	if len(searchText) > MaxTextLength {
		return errors.NewInvalidRequest("search_text exceeds maximum length")
	}
	if len(replaceText) > MaxTextLength {
		return errors.NewInvalidRequest("replace_text exceeds maximum length")
	}
	return nil
}

// locate applies the location policy and returns the mutated content along
// with a result describing the change. On no match the content is returned
// unchanged with Success false.
func (e *Engine) locate(content, searchText, replaceText string, fuzzy bool, maxReplacements int) (string, *Result) {
	if idx := strings.Index(content, searchText); idx >= 0 {
		occurrences := strings.Count(content, searchText)
		changes := min(occurrences, maxReplacements)
		return strings.Replace(content, searchText, replaceText, changes), &Result{
			Success:        true,
			ChangesMade:    changes,
			LineNumber:     1 + strings.Count(content[:idx], "\n"),
			SimilarityUsed: 1.0,
			MatchType:      string(search.KindExact),
		}
	}

	if fuzzy {
		if best, ok := e.bestFuzzyLine(content, searchText); ok {
			return replaceLine(content, best.LineNumber, replaceText), &Result{
				Success:        true,
				ChangesMade:    1,
				LineNumber:     best.LineNumber,
				SimilarityUsed: best.Score,
				MatchType:      string(search.KindFuzzy),
			}
		}
	}

	return content, &Result{MatchType: string(search.KindNone)}
}

// bestFuzzyLine returns the highest-scoring fuzzy match, if any line clears
// the threshold.
func (e *Engine) bestFuzzyLine(content, searchText string) (search.Match, bool) {
	matches, err := e.search.FindInLines(fileaccess.SplitLines(content), searchText, true)
	if err != nil || len(matches) == 0 {
		return search.Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	return best, true
}

// replaceLine swaps the content of the 1-based line, preserving its
// terminator.
func replaceLine(content string, lineNumber int, replacement string) string {
	lines := fileaccess.SplitLines(content)
	if lineNumber < 1 || lineNumber > len(lines) {
		return content
	}
	old := lines[lineNumber-1]
	if strings.HasSuffix(old, "\n") {
		lines[lineNumber-1] = replacement + "\n"
	} else {
		lines[lineNumber-1] = replacement
	}
	return strings.Join(lines, "")
}

// renderPreview renders a unified before/after diff. Identical content
// yields an empty preview.
func renderPreview(path, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path + " (before)",
		ToFile:   path + " (after)",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return diff
}
