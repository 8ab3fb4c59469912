package edit

import (
	"os"
	"path/filepath"
	"time"

	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

// BackupStore writes timestamped pre-edit copies into a configured
// directory.
type BackupStore struct {
	dir string
}

// NewBackupStore creates a store rooted at dir. The directory is created
// lazily on first backup.
func NewBackupStore(dir string) *BackupStore {
	return &BackupStore{dir: dir}
}

// Backup copies the file's exact current bytes into the backup directory and
// returns the backup path. The copy goes through the same atomic write
// primitive as edits. The name carries a second-granularity timestamp, so
// truly simultaneous backups of one file can collide; repeated edits do not.
func (s *BackupStore) Backup(path string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.NewBackupFailed(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewBackupFailed(path, err)
	}

	name := filepath.Base(path) + "." + time.Now().Format("20060102_150405") + ".backup"
	dest := filepath.Join(s.dir, name)
	if err := fileaccess.WriteBytes(dest, data); err != nil {
		return "", errors.NewBackupFailed(path, err)
	}
	return dest, nil
}
