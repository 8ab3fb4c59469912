package fileaccess

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the fallback when detection is unavailable or
// inconclusive.
const DefaultEncoding = "utf-8"

const (
	// detectSampleSize bounds how much of a file is read for detection.
	detectSampleSize = 64 * 1024

	// detectConfidenceMin is the minimum detector confidence to accept a
	// suggestion over the default.
	detectConfidenceMin = 0.7
)

// Detector suggests an encoding for a byte sample. Implementations must not
// fail: any internal error is reported as an empty name with zero confidence.
type Detector interface {
	Detect(sample []byte) (name string, confidence float64)
}

// ChardetDetector detects encodings with the chardet charset detector.
type ChardetDetector struct{}

// Detect implements Detector.
func (ChardetDetector) Detect(sample []byte) (string, float64) {
	if len(sample) == 0 {
		return "", 0
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil {
		return "", 0
	}
	return result.Charset, float64(result.Confidence) / 100
}

// resolveEncoding turns a detector suggestion into the encoding used for
// reads. Low confidence, an absent detector, or an empty sample all fall
// back to the default. An ASCII suggestion is promoted to UTF-8 since UTF-8
// is a strict superset.
func resolveEncoding(det Detector, sample []byte) string {
	if det == nil || len(sample) == 0 {
		return DefaultEncoding
	}
	name, confidence := det.Detect(sample)
	if name == "" || confidence < detectConfidenceMin {
		return DefaultEncoding
	}
	name = strings.ToLower(name)
	if name == "ascii" || name == "us-ascii" {
		return DefaultEncoding
	}
	return name
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "ascii", "us-ascii", "":
		return true
	}
	return false
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// decodeBytes decodes raw file bytes into a string under the named encoding.
// UTF-8 content is validated rather than silently repaired.
func decodeBytes(data []byte, name string) (string, error) {
	if isUTF8Name(name) {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("content is not valid UTF-8")
		}
		return string(data), nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// encodeString encodes content back into the named encoding for writing.
func encodeString(content, name string) ([]byte, error) {
	if isUTF8Name(name) {
		return []byte(content), nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(content))
}
