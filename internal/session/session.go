// Package session tracks per-file metadata snapshots keyed by content
// identity. A session is valid only while the live file's content hash
// matches; callers detect external modification by reloading and comparing
// hashes.
package session

import (
	"encoding/hex"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

// FileSession is a snapshot of a file's metadata at load time. Sessions are
// immutable after construction; a content change produces a new session
// rather than mutating the old one.
type FileSession struct {
	CanonicalPath string    `json:"canonical_path"`
	ContentHash   string    `json:"content_hash"`
	LineCount     int       `json:"line_count"`
	FileSize      int64     `json:"file_size"`
	Encoding      string    `json:"encoding"`
	ChunkSize     int       `json:"chunk_size"`
	LoadedAt      time.Time `json:"loaded_at"`
	HasLongLines  bool      `json:"has_long_lines"`
}

// Cache maps (canonical path, content hash) to file sessions. It is safe for
// concurrent use: at most one session build runs per key, and callers never
// observe a partially constructed session.
type Cache struct {
	cfg    *config.Config
	reader *fileaccess.Reader

	mu       sync.Mutex
	sessions map[string]*FileSession
	building map[string]chan struct{}
}

// NewCache creates an empty session cache.
func NewCache(cfg *config.Config, reader *fileaccess.Reader) *Cache {
	return &Cache{
		cfg:      cfg,
		reader:   reader,
		sessions: make(map[string]*FileSession),
		building: make(map[string]chan struct{}),
	}
}

// Load returns the session for the file's current content, building and
// caching one if none exists. Hashing streams the whole file, so Load is
// O(file size) even on a cache hit; that cost buys reliable change
// detection.
func (c *Cache) Load(path string) (*FileSession, error) {
	canonical, err := fileaccess.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	hash, size, err := c.hashFile(canonical)
	if err != nil {
		return nil, err
	}
	key := sessionKey(canonical, hash)

	for {
		c.mu.Lock()
		if s, ok := c.sessions[key]; ok {
			c.mu.Unlock()
			return s, nil
		}
		if ch, inFlight := c.building[key]; inFlight {
			c.mu.Unlock()
			<-ch
			// The builder either cached a session or failed; retry and
			// take over the build in the failure case.
			continue
		}
		ch := make(chan struct{})
		c.building[key] = ch
		c.mu.Unlock()

		s, buildErr := c.build(canonical, hash, size)

		c.mu.Lock()
		delete(c.building, key)
		if buildErr == nil {
			c.sessions[key] = s
		}
		c.mu.Unlock()
		close(ch)

		return s, buildErr
	}
}

// Get returns the cached session matching the file's current content, or
// ok=false when none exists. Like Load, it must hash the file to derive the
// lookup key.
func (c *Cache) Get(path string) (*FileSession, bool, error) {
	canonical, err := fileaccess.ResolvePath(path)
	if err != nil {
		return nil, false, err
	}
	hash, _, err := c.hashFile(canonical)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[sessionKey(canonical, hash)]
	return s, ok, nil
}

// Invalidate removes every cached session for the path, across all
// historical content hashes.
func (c *Cache) Invalidate(path string) error {
	canonical, err := fileaccess.ResolvePath(path)
	if err != nil {
		return err
	}
	prefix := canonical + "\x00"

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.sessions {
		if strings.HasPrefix(key, prefix) {
			delete(c.sessions, key)
		}
	}
	return nil
}

func sessionKey(canonical, hash string) string {
	return canonical + "\x00" + hash
}

// hashFile computes the hex BLAKE3 digest of the file's full byte content,
// streaming in chunk-size reads.
func (c *Cache) hashFile(canonical string) (string, int64, error) {
	f, err := os.Open(canonical)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, errors.NewFileNotFound(canonical, err)
		}
		return "", 0, errors.NewFileUnreadable(canonical, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", 0, errors.NewFileUnreadable(canonical, err)
	}
	if fi.IsDir() {
		return "", 0, errors.NewFileUnreadable(canonical, nil)
	}

	hasher := blake3.New()
	buf := make([]byte, c.cfg.StreamingChunkSize)
	if _, err := io.CopyBuffer(hasher, f, buf); err != nil {
		return "", 0, errors.NewFileUnreadable(canonical, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), fi.Size(), nil
}

// build scans the file once to count lines and test the long-line
// condition. Every line is checked, not just a leading sample.
func (c *Cache) build(canonical, hash string, size int64) (*FileSession, error) {
	enc, err := c.reader.DetectEncoding(canonical)
	if err != nil {
		return nil, err
	}
	lineCount, hasLongLines, err := c.scanLines(canonical)
	if err != nil {
		return nil, err
	}

	return &FileSession{
		CanonicalPath: canonical,
		ContentHash:   hash,
		LineCount:     lineCount,
		FileSize:      size,
		Encoding:      enc,
		ChunkSize:     c.cfg.StreamingChunkSize,
		LoadedAt:      time.Now(),
		HasLongLines:  hasLongLines,
	}, nil
}

// scanLines counts newline-delimited lines and flags any line longer than
// the configured threshold. The scan is chunked and keeps O(1) memory
// regardless of file size. A trailing segment without a terminator counts
// as a line.
func (c *Cache) scanLines(canonical string) (int, bool, error) {
	f, err := os.Open(canonical)
	if err != nil {
		return 0, false, errors.NewFileUnreadable(canonical, err)
	}
	defer f.Close()

	var (
		lineCount    int
		lineLen      int
		hasLongLines bool
	)
	buf := make([]byte, c.cfg.StreamingChunkSize)
	for {
		n, readErr := f.Read(buf)
		for _, b := range buf[:n] {
			if b == '\n' {
				lineCount++
				lineLen = 0
				continue
			}
			lineLen++
			if lineLen > c.cfg.MaxLineLength {
				hasLongLines = true
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, false, errors.NewFileUnreadable(canonical, readErr)
		}
	}
	if lineLen > 0 {
		lineCount++
	}
	return lineCount, hasLongLines, nil
}
