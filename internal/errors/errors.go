package errors

import (
	"errors"
	"fmt"
)

// Code classifies a largefile error.
type Code string

const (
	CodeFileAccess     Code = "FILE_ACCESS"     // file missing, unreadable, undecodable, or unwritable
	CodeSearchFailed   Code = "SEARCH_FAILED"   // search could not run against the file
	CodeEditFailed     Code = "EDIT_FAILED"     // backup or write failure during an edit
	CodeInvalidRequest Code = "INVALID_REQUEST" // parameter validation failure
	CodeInternal       Code = "INTERNAL"        // unexpected failure
)

// Error is a structured error with a code, a user-facing message, and an
// actionable suggestion. The underlying cause is preserved for unwrapping.
type Error struct {
	Code       Code
	Message    string
	Suggestion string
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewFileNotFound creates a FILE_ACCESS error for a missing file.
func NewFileNotFound(path string, cause error) *Error {
	return &Error{
		Code:       CodeFileAccess,
		Message:    fmt.Sprintf("file not found: %s", path),
		Suggestion: "check that the path is absolute and the file exists",
		Cause:      cause,
	}
}

// NewFileUnreadable creates a FILE_ACCESS error for a file that exists but
// cannot be read.
func NewFileUnreadable(path string, cause error) *Error {
	return &Error{
		Code:       CodeFileAccess,
		Message:    fmt.Sprintf("cannot read file: %s", path),
		Suggestion: "check file permissions and that the path is a regular file",
		Cause:      cause,
	}
}

// NewDecodeFailed creates a FILE_ACCESS error for content that cannot be
// decoded under the resolved encoding.
func NewDecodeFailed(path, encoding string, cause error) *Error {
	return &Error{
		Code:       CodeFileAccess,
		Message:    fmt.Sprintf("cannot decode file %s with encoding %s", path, encoding),
		Suggestion: "the file may be binary or use a different encoding",
		Cause:      cause,
	}
}

// NewWriteFailed creates a FILE_ACCESS error for a failed write. The original
// file is untouched when this error is returned.
func NewWriteFailed(path string, cause error) *Error {
	return &Error{
		Code:       CodeFileAccess,
		Message:    fmt.Sprintf("failed to write file: %s", path),
		Suggestion: "check directory permissions and available disk space",
		Cause:      cause,
	}
}

// NewSearchFailed creates a SEARCH_FAILED error for a search that could not
// read its target.
func NewSearchFailed(path string, cause error) *Error {
	return &Error{
		Code:       CodeSearchFailed,
		Message:    fmt.Sprintf("cannot search file: %s", path),
		Suggestion: "check the path and permissions",
		Cause:      cause,
	}
}

// NewFuzzyUnavailable creates a SEARCH_FAILED error for a fuzzy search
// requested without a similarity matcher configured.
func NewFuzzyUnavailable() *Error {
	return &Error{
		Code:       CodeSearchFailed,
		Message:    "fuzzy matching is not available",
		Suggestion: "retry with fuzzy disabled or configure a similarity matcher",
	}
}

// NewPatternNotFound creates a SEARCH_FAILED error for a read target
// pattern that matched nothing.
func NewPatternNotFound(pattern string) *Error {
	return &Error{
		Code:       CodeSearchFailed,
		Message:    fmt.Sprintf("pattern not found: %q", pattern),
		Suggestion: "try a broader pattern or search the file first",
	}
}

// NewBackupFailed creates an EDIT_FAILED error for a backup that could not be
// created. The edit is aborted and the source file is untouched.
func NewBackupFailed(path string, cause error) *Error {
	return &Error{
		Code:       CodeEditFailed,
		Message:    fmt.Sprintf("failed to create backup of %s", path),
		Suggestion: "check that the backup directory is writable; the file was not modified",
		Cause:      cause,
	}
}

// NewEditFailed creates an EDIT_FAILED error for a failed edit commit.
func NewEditFailed(path string, cause error) *Error {
	return &Error{
		Code:       CodeEditFailed,
		Message:    fmt.Sprintf("failed to edit %s", path),
		Suggestion: "check file permissions; the original content was left in place",
		Cause:      cause,
	}
}

// NewInvalidRequest creates an INVALID_REQUEST error for bad parameters.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:       CodeInvalidRequest,
		Message:    msg,
		Suggestion: "adjust the request parameters and retry",
	}
}

// NewInternal creates an INTERNAL error for unexpected failures.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    CodeInternal,
		Message: msg,
		Cause:   err,
	}
}

// Is reports whether err is (or wraps) an Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
