//go:build !unix

package fileaccess

import (
	"fmt"
	"os"
)

// mapFile is unavailable on this platform; the reader falls back to a plain
// in-memory read.
func mapFile(_ *os.File, _ int64) ([]byte, func(), error) {
	return nil, nil, fmt.Errorf("memory mapping not supported on this platform")
}
