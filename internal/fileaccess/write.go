package fileaccess

import (
	"bytes"
	stderrors "errors"

	"github.com/natefinch/atomic"

	"github.com/peteretelej/largefile/internal/errors"
)

var errInvalidUTF8 = stderrors.New("content is not valid UTF-8")

// WriteFile writes content to path atomically: the bytes land in a sibling
// temporary file which then replaces the target. On success the target holds
// the new bytes; on failure the target is unchanged and the temporary file is
// cleaned up.
func WriteFile(path, content, enc string) error {
	data, err := encodeString(content, enc)
	if err != nil {
		return errors.NewWriteFailed(path, err)
	}
	return WriteBytes(path, data)
}

// WriteBytes is the atomic write primitive shared by edits and backups.
func WriteBytes(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.NewWriteFailed(path, err)
	}
	return nil
}
