//go:build unix

package fileaccess

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the file read-only. The returned release function unmaps the
// region; the caller must not touch the bytes afterwards. Any failure here
// makes the reader fall back to a plain in-memory read.
func mapFile(f *os.File, size int64) ([]byte, func(), error) {
	const maxInt = int64(^uint(0) >> 1)
	if size <= 0 || size > maxInt {
		return nil, nil, fmt.Errorf("size %d not mappable", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("memory-mapping %s: %w", f.Name(), err)
	}
	release := func() { _ = unix.Munmap(data) }
	return data, release, nil
}
