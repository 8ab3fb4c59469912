package fileaccess

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/errors"
)

// Reader reads files with a size-appropriate strategy. All methods share the
// same contract regardless of strategy: full content or lines with their
// original terminators preserved, and distinct named errors for missing,
// unreadable, and undecodable files. Every call opens, reads, and closes the
// file within its own scope.
type Reader struct {
	cfg      *config.Config
	detector Detector
}

// NewReader creates a Reader. The detector may be nil, in which case every
// file is decoded as UTF-8.
func NewReader(cfg *config.Config, detector Detector) *Reader {
	return &Reader{cfg: cfg, detector: detector}
}

// Stat returns the file's size and the strategy chosen for it.
func (r *Reader) Stat(path string) (int64, Strategy, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, "", classifyAccessErr(path, err)
	}
	if fi.IsDir() {
		return 0, "", errors.NewFileUnreadable(path, nil)
	}
	return fi.Size(), ChooseStrategy(fi.Size(), r.cfg), nil
}

// DetectEncoding resolves the encoding for a file from a bounded sample of
// its leading bytes. Detection never fails the call: any detector problem
// resolves to the default encoding.
func (r *Reader) DetectEncoding(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", classifyAccessErr(path, err)
	}
	defer f.Close()

	sample := make([]byte, detectSampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", errors.NewFileUnreadable(path, err)
	}
	return resolveEncoding(r.detector, sample[:n]), nil
}

// Read returns the file's full decoded content.
func (r *Reader) Read(path string) (string, error) {
	size, strategy, err := r.Stat(path)
	if err != nil {
		return "", err
	}
	enc, err := r.DetectEncoding(path)
	if err != nil {
		return "", err
	}

	switch strategy {
	case StrategyMemory:
		return r.readMemory(path, enc)
	case StrategyMapped:
		return r.readMapped(path, size, enc)
	default:
		return r.readStreaming(path, enc)
	}
}

// ReadLines returns the file's decoded content as ordered lines with their
// terminators preserved. A final line without a terminator is still emitted.
func (r *Reader) ReadLines(path string) ([]string, error) {
	size, strategy, err := r.Stat(path)
	if err != nil {
		return nil, err
	}
	enc, err := r.DetectEncoding(path)
	if err != nil {
		return nil, err
	}

	if strategy == StrategyStreaming {
		return r.streamLines(path, enc)
	}

	var content string
	if strategy == StrategyMapped {
		content, err = r.readMapped(path, size, enc)
	} else {
		content, err = r.readMemory(path, enc)
	}
	if err != nil {
		return nil, err
	}
	return SplitLines(content), nil
}

func (r *Reader) readMemory(path, enc string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classifyAccessErr(path, err)
	}
	content, err := decodeBytes(data, enc)
	if err != nil {
		return "", errors.NewDecodeFailed(path, enc, err)
	}
	return content, nil
}

func (r *Reader) readMapped(path string, size int64, enc string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", classifyAccessErr(path, err)
	}
	defer f.Close()

	mapped, release, err := mapFile(f, size)
	if err != nil {
		// Mapping failures degrade to a plain read rather than failing
		// the call.
		return r.readMemory(path, enc)
	}
	data := make([]byte, len(mapped))
	copy(data, mapped)
	release()

	content, err := decodeBytes(data, enc)
	if err != nil {
		return "", errors.NewDecodeFailed(path, enc, err)
	}
	return content, nil
}

func (r *Reader) readStreaming(path, enc string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", classifyAccessErr(path, err)
	}
	defer f.Close()

	decoded, err := decodedReader(f, enc)
	if err != nil {
		return "", errors.NewDecodeFailed(path, enc, err)
	}

	var b strings.Builder
	buf := make([]byte, r.cfg.StreamingChunkSize)
	for {
		n, readErr := decoded.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", errors.NewDecodeFailed(path, enc, readErr)
		}
	}

	content := b.String()
	if isUTF8Name(enc) && !utf8.ValidString(content) {
		return "", errors.NewDecodeFailed(path, enc, errInvalidUTF8)
	}
	return content, nil
}

// streamLines reads the file in fixed-size chunks and reassembles lines
// across chunk boundaries, buffering the trailing partial line between reads.
func (r *Reader) streamLines(path, enc string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyAccessErr(path, err)
	}
	defer f.Close()

	decoded, err := decodedReader(f, enc)
	if err != nil {
		return nil, errors.NewDecodeFailed(path, enc, err)
	}

	var lines []string
	carry := ""
	buf := make([]byte, r.cfg.StreamingChunkSize)
	for {
		n, readErr := decoded.Read(buf)
		if n > 0 {
			parts := strings.Split(carry+string(buf[:n]), "\n")
			carry = parts[len(parts)-1]
			for _, line := range parts[:len(parts)-1] {
				lines = append(lines, line+"\n")
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, errors.NewDecodeFailed(path, enc, readErr)
		}
	}
	if carry != "" {
		lines = append(lines, carry)
	}

	if isUTF8Name(enc) {
		for _, line := range lines {
			if !utf8.ValidString(line) {
				return nil, errors.NewDecodeFailed(path, enc, errInvalidUTF8)
			}
		}
	}
	return lines, nil
}

// decodedReader wraps f so reads yield UTF-8 text. For UTF-8 sources the
// file is read directly and validated by the caller once assembly is done,
// since a chunk boundary may split a multi-byte rune.
func decodedReader(f *os.File, enc string) (io.Reader, error) {
	if isUTF8Name(enc) {
		return f, nil
	}
	e, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	return e.NewDecoder().Reader(f), nil
}

// SplitLines splits content into lines, preserving each line's newline.
// A trailing segment without a newline is kept as the final line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	parts := strings.SplitAfter(content, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func classifyAccessErr(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.NewFileNotFound(path, err)
	}
	return errors.NewFileUnreadable(path, err)
}
