package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

func newTestEngine(matcher Matcher) *Engine {
	cfg := config.Default()
	return NewEngine(fileaccess.NewReader(cfg, nil), matcher, cfg)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFind_ExactOnly(t *testing.T) {
	path := writeTemp(t, "Hello world\nThis is a test\nHello again\n")
	e := newTestEngine(SequenceMatcher{})

	matches, err := e.Find(path, "Hello", false)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	for _, m := range matches {
		if m.Score != 1.0 {
			t.Errorf("line %d score = %v, want 1.0", m.LineNumber, m.Score)
		}
		if m.Kind != KindExact {
			t.Errorf("line %d kind = %s, want exact", m.LineNumber, m.Kind)
		}
	}
	if matches[0].LineNumber != 1 || matches[1].LineNumber != 3 {
		t.Errorf("line numbers = %d, %d, want 1, 3", matches[0].LineNumber, matches[1].LineNumber)
	}
	if matches[0].Content != "Hello world" {
		t.Errorf("Content = %q, want terminator stripped", matches[0].Content)
	}
	if matches[0].Span == nil || matches[0].Span.Start != 0 || matches[0].Span.End != 5 {
		t.Errorf("Span = %+v, want {0 5}", matches[0].Span)
	}
}

func TestFind_FuzzyScenario(t *testing.T) {
	// "def helo" against "def hello():" must land in [0.8, 1.0).
	path := writeTemp(t, "def hello():\n    return 42\n")
	e := newTestEngine(SequenceMatcher{})

	matches, err := e.Find(path, "def helo", true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.Kind != KindFuzzy {
		t.Errorf("Kind = %s, want fuzzy", m.Kind)
	}
	if m.Score < 0.8 || m.Score >= 1.0 {
		t.Errorf("Score = %v, want in [0.8, 1.0)", m.Score)
	}
	if m.LineNumber != 1 {
		t.Errorf("LineNumber = %d, want 1", m.LineNumber)
	}
}

func TestFind_FuzzyIsSupersetWithoutDuplicates(t *testing.T) {
	content := "process data\nprocess dta\nunrelated line\n"
	path := writeTemp(t, content)
	e := newTestEngine(SequenceMatcher{})

	exactOnly, err := e.Find(path, "process data", false)
	if err != nil {
		t.Fatalf("Find(exact) error = %v", err)
	}
	withFuzzy, err := e.Find(path, "process data", true)
	if err != nil {
		t.Fatalf("Find(fuzzy) error = %v", err)
	}

	if len(withFuzzy) < len(exactOnly) {
		t.Errorf("fuzzy results (%d) should be a superset of exact (%d)", len(withFuzzy), len(exactOnly))
	}

	seen := make(map[int]bool)
	for _, m := range withFuzzy {
		if seen[m.LineNumber] {
			t.Errorf("line %d appears twice in merged results", m.LineNumber)
		}
		seen[m.LineNumber] = true
	}

	// Line 1 matches exactly and would also score ≥ threshold as fuzzy;
	// exact must win the merge.
	if withFuzzy[0].LineNumber != 1 || withFuzzy[0].Kind != KindExact || withFuzzy[0].Score != 1.0 {
		t.Errorf("merged[0] = %+v, want exact match on line 1", withFuzzy[0])
	}
}

func TestFind_OrderedByLineThenScore(t *testing.T) {
	path := writeTemp(t, "def helo world\nzzz\ndef helo wrld\n")
	e := newTestEngine(SequenceMatcher{})

	matches, err := e.Find(path, "def helo world", true)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].LineNumber < matches[i-1].LineNumber {
			t.Errorf("matches out of line order: %+v", matches)
		}
	}
}

func TestFind_FuzzyWithoutMatcher(t *testing.T) {
	path := writeTemp(t, "content\n")
	e := newTestEngine(nil)

	_, err := e.Find(path, "content", true)
	if !errors.Is(err, errors.CodeSearchFailed) {
		t.Errorf("Find(fuzzy, nil matcher) error = %v, want SEARCH_FAILED", err)
	}

	// Exact search still works without a matcher.
	matches, err := e.Find(path, "content", false)
	if err != nil || len(matches) != 1 {
		t.Errorf("Find(exact, nil matcher) = (%v, %v), want 1 match", matches, err)
	}
}

func TestFind_UnreadableFile(t *testing.T) {
	e := newTestEngine(SequenceMatcher{})
	_, err := e.Find(filepath.Join(t.TempDir(), "absent.txt"), "x", false)
	if !errors.Is(err, errors.CodeSearchFailed) {
		t.Errorf("Find(missing) error = %v, want SEARCH_FAILED", err)
	}
}

func TestSequenceMatcher_Ratio(t *testing.T) {
	m := SequenceMatcher{}

	if got := m.Ratio("abc", "abc"); got != 1.0 {
		t.Errorf("Ratio(identical) = %v, want 1.0", got)
	}
	if got := m.Ratio("abc", ""); got != 0 {
		t.Errorf("Ratio(vs empty) = %v, want 0", got)
	}
	if got := m.Ratio("abc", "xyz"); got != 0 {
		t.Errorf("Ratio(disjoint) = %v, want 0", got)
	}
	got := m.Ratio("def hello():", "def helo():")
	if got <= 0.8 || got >= 1.0 {
		t.Errorf("Ratio(near-identical) = %v, want in (0.8, 1.0)", got)
	}
}
