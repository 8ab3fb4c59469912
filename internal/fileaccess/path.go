package fileaccess

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peteretelej/largefile/internal/errors"
)

// ResolvePath converts a path to its canonical absolute form: a leading
// home reference is expanded and the result is normalized. The target is
// never stat'd; existence checks belong to callers.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", errors.NewInvalidRequest("path is required")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.NewInternal(err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return filepath.Clean(abs), nil
}
