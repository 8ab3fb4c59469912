package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names for the configuration surface.
const (
	EnvMemoryThreshold    = "LARGEFILE_MEMORY_THRESHOLD"
	EnvMmapThreshold      = "LARGEFILE_MMAP_THRESHOLD"
	EnvMaxLineLength      = "LARGEFILE_MAX_LINE_LENGTH"
	EnvTruncateLength     = "LARGEFILE_TRUNCATE_LENGTH"
	EnvFuzzyThreshold     = "LARGEFILE_FUZZY_THRESHOLD"
	EnvMaxSearchResults   = "LARGEFILE_MAX_SEARCH_RESULTS"
	EnvContextLines       = "LARGEFILE_CONTEXT_LINES"
	EnvStreamingChunkSize = "LARGEFILE_STREAMING_CHUNK_SIZE"
	EnvBackupDir          = "LARGEFILE_BACKUP_DIR"
	EnvEnableOutline      = "LARGEFILE_ENABLE_OUTLINE"
	EnvOutlineTimeout     = "LARGEFILE_OUTLINE_TIMEOUT"
	EnvLogLevel           = "LARGEFILE_LOG_LEVEL"
)

// Config holds application configuration.
type Config struct {
	// MemoryThreshold is the file size in bytes below which files are read
	// fully into memory. Files at or above it use memory mapping.
	MemoryThreshold int64

	// MmapThreshold is the file size in bytes at or above which files are
	// read with chunked streaming instead of memory mapping.
	MmapThreshold int64

	// MaxLineLength is the character count above which a line counts as
	// "long" for overview reporting.
	MaxLineLength int

	// TruncateLength is the display length cap for matched lines.
	TruncateLength int

	// FuzzyThreshold is the minimum similarity score for fuzzy matches.
	FuzzyThreshold float64

	// MaxSearchResults is the default result cap for searches.
	MaxSearchResults int

	// ContextLines is the default context line count around matches.
	ContextLines int

	// StreamingChunkSize is the read size in bytes for the streaming
	// strategy and for content hashing.
	StreamingChunkSize int

	// BackupDir is the directory that receives pre-edit backups.
	BackupDir string

	// EnableOutline controls whether overview calls run the outline provider.
	EnableOutline bool

	// OutlineTimeout is the time budget for outline extraction.
	OutlineTimeout time.Duration

	// LogLevel is the zerolog level name for stderr logging.
	LogLevel string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MemoryThreshold:    50 * 1024 * 1024,  // 50 MiB
		MmapThreshold:      500 * 1024 * 1024, // 500 MiB
		MaxLineLength:      1000,
		TruncateLength:     500,
		FuzzyThreshold:     0.8,
		MaxSearchResults:   20,
		ContextLines:       2,
		StreamingChunkSize: 8192,
		BackupDir:          ".largefile_backups",
		EnableOutline:      true,
		OutlineTimeout:     5 * time.Second,
		LogLevel:           "info",
	}
}

// FromEnv builds a configuration from LARGEFILE_* environment variables.
// Unset or unparseable variables keep their defaults.
func FromEnv() *Config {
	cfg := Default()
	cfg.MemoryThreshold = envInt64(EnvMemoryThreshold, cfg.MemoryThreshold)
	cfg.MmapThreshold = envInt64(EnvMmapThreshold, cfg.MmapThreshold)
	cfg.MaxLineLength = envInt(EnvMaxLineLength, cfg.MaxLineLength)
	cfg.TruncateLength = envInt(EnvTruncateLength, cfg.TruncateLength)
	cfg.FuzzyThreshold = envFloat(EnvFuzzyThreshold, cfg.FuzzyThreshold)
	cfg.MaxSearchResults = envInt(EnvMaxSearchResults, cfg.MaxSearchResults)
	cfg.ContextLines = envInt(EnvContextLines, cfg.ContextLines)
	cfg.StreamingChunkSize = envInt(EnvStreamingChunkSize, cfg.StreamingChunkSize)
	cfg.BackupDir = envString(EnvBackupDir, cfg.BackupDir)
	cfg.EnableOutline = envBool(EnvEnableOutline, cfg.EnableOutline)
	cfg.OutlineTimeout = envSeconds(EnvOutlineTimeout, cfg.OutlineTimeout)
	cfg.LogLevel = envString(EnvLogLevel, cfg.LogLevel)
	return cfg
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envInt64(name string, fallback int64) int64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envFloat(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 || f > 1 {
		return fallback
	}
	return f
}

func envBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envSeconds reads a duration expressed as a whole number of seconds.
func envSeconds(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
