package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestError_MessageIncludesCode(t *testing.T) {
	err := NewInvalidRequest("search_text is required")
	if !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "search_text is required") {
		t.Errorf("Error() = %q, want message", err.Error())
	}
}

func TestError_UnwrapPreservesCause(t *testing.T) {
	cause := os.ErrNotExist
	err := NewFileNotFound("/tmp/missing.txt", cause)

	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestIs_MatchesCode(t *testing.T) {
	tests := []struct {
		err  error
		code Code
		want bool
	}{
		{NewFileNotFound("/a", nil), CodeFileAccess, true},
		{NewDecodeFailed("/a", "utf-8", nil), CodeFileAccess, true},
		{NewSearchFailed("/a", nil), CodeSearchFailed, true},
		{NewFuzzyUnavailable(), CodeSearchFailed, true},
		{NewBackupFailed("/a", nil), CodeEditFailed, true},
		{NewInvalidRequest("bad"), CodeInvalidRequest, true},
		{NewInvalidRequest("bad"), CodeEditFailed, false},
		{stderrors.New("plain"), CodeInternal, false},
	}

	for _, tt := range tests {
		if got := Is(tt.err, tt.code); got != tt.want {
			t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
		}
	}
}

func TestIs_MatchesWrappedError(t *testing.T) {
	inner := NewWriteFailed("/a", nil)
	wrapped := fmt.Errorf("commit: %w", inner)

	if !Is(wrapped, CodeFileAccess) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
}

func TestConstructors_CarrySuggestions(t *testing.T) {
	errs := []*Error{
		NewFileNotFound("/a", nil),
		NewFileUnreadable("/a", nil),
		NewDecodeFailed("/a", "latin-1", nil),
		NewWriteFailed("/a", nil),
		NewSearchFailed("/a", nil),
		NewFuzzyUnavailable(),
		NewBackupFailed("/a", nil),
		NewEditFailed("/a", nil),
		NewInvalidRequest("bad"),
	}
	for _, e := range errs {
		if e.Suggestion == "" {
			t.Errorf("%s error has no suggestion", e.Code)
		}
	}
}
