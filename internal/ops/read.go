package ops

import (
	"strings"

	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

// Read target windows: a line target shows a fixed page starting at the
// target, a pattern target shows context around the best match.
const (
	readWindowLines     = 20
	patternWindowRadius = 10
)

// ReadInput targets content either by 1-based line number or by pattern.
// Exactly one of TargetLine and TargetPattern must be set.
type ReadInput struct {
	Path          string
	TargetLine    int
	TargetPattern string
}

// ReadOutput is a bounded window of file content.
type ReadOutput struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	LineCount int    `json:"line_count"` // total lines in the file
}

// Read returns a window of lines around the requested target. Pattern
// targets are located with an exact search first, falling back to fuzzy;
// a pattern with no match is an error, not an empty window.
func Read(d *Deps, in ReadInput) (*ReadOutput, error) {
	hasLine := in.TargetLine > 0
	hasPattern := in.TargetPattern != ""
	if hasLine == hasPattern {
		return nil, errors.NewInvalidRequest("exactly one of target line and target pattern is required")
	}

	canonical, err := fileaccess.ResolvePath(in.Path)
	if err != nil {
		return nil, err
	}
	lines, err := d.Reader.ReadLines(canonical)
	if err != nil {
		return nil, err
	}

	var start, end int
	if hasLine {
		if in.TargetLine > len(lines) {
			return nil, errors.NewInvalidRequest("target line is past the end of the file")
		}
		start = in.TargetLine
		end = min(in.TargetLine+readWindowLines-1, len(lines))
	} else {
		target, ferr := findReadTarget(d, lines, in.TargetPattern)
		if ferr != nil {
			return nil, ferr
		}
		start = max(target-patternWindowRadius, 1)
		end = min(target+patternWindowRadius, len(lines))
	}

	var b strings.Builder
	for _, line := range lines[start-1 : end] {
		b.WriteString(line)
	}
	return &ReadOutput{
		Path:      canonical,
		Content:   b.String(),
		StartLine: start,
		EndLine:   end,
		LineCount: len(lines),
	}, nil
}

// findReadTarget locates the best-matching line for a pattern. The merged
// match list is already ordered by line then descending score, so the best
// exact hit (or the earliest fuzzy hit) comes first.
func findReadTarget(d *Deps, lines []string, pattern string) (int, error) {
	matches, err := d.Search.FindInLines(lines, pattern, false)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		fuzzy, ferr := d.Search.FindInLines(lines, pattern, true)
		if ferr == nil {
			matches = fuzzy
		}
	}
	if len(matches) == 0 {
		return 0, errors.NewPatternNotFound(pattern)
	}
	return matches[0].LineNumber, nil
}
