package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MemoryThreshold != 52428800 {
		t.Errorf("MemoryThreshold = %d, want 52428800", cfg.MemoryThreshold)
	}
	if cfg.MmapThreshold != 524288000 {
		t.Errorf("MmapThreshold = %d, want 524288000", cfg.MmapThreshold)
	}
	if cfg.MaxLineLength != 1000 {
		t.Errorf("MaxLineLength = %d, want 1000", cfg.MaxLineLength)
	}
	if cfg.TruncateLength != 500 {
		t.Errorf("TruncateLength = %d, want 500", cfg.TruncateLength)
	}
	if cfg.FuzzyThreshold != 0.8 {
		t.Errorf("FuzzyThreshold = %v, want 0.8", cfg.FuzzyThreshold)
	}
	if cfg.MaxSearchResults != 20 {
		t.Errorf("MaxSearchResults = %d, want 20", cfg.MaxSearchResults)
	}
	if cfg.ContextLines != 2 {
		t.Errorf("ContextLines = %d, want 2", cfg.ContextLines)
	}
	if cfg.StreamingChunkSize != 8192 {
		t.Errorf("StreamingChunkSize = %d, want 8192", cfg.StreamingChunkSize)
	}
	if cfg.BackupDir != ".largefile_backups" {
		t.Errorf("BackupDir = %q, want .largefile_backups", cfg.BackupDir)
	}
	if !cfg.EnableOutline {
		t.Error("EnableOutline should default to true")
	}
	if cfg.OutlineTimeout != 5*time.Second {
		t.Errorf("OutlineTimeout = %v, want 5s", cfg.OutlineTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvMemoryThreshold, "1024")
	t.Setenv(EnvFuzzyThreshold, "0.9")
	t.Setenv(EnvBackupDir, "/tmp/backups")
	t.Setenv(EnvEnableOutline, "false")
	t.Setenv(EnvOutlineTimeout, "10")

	cfg := FromEnv()

	if cfg.MemoryThreshold != 1024 {
		t.Errorf("MemoryThreshold = %d, want 1024", cfg.MemoryThreshold)
	}
	if cfg.FuzzyThreshold != 0.9 {
		t.Errorf("FuzzyThreshold = %v, want 0.9", cfg.FuzzyThreshold)
	}
	if cfg.BackupDir != "/tmp/backups" {
		t.Errorf("BackupDir = %q, want /tmp/backups", cfg.BackupDir)
	}
	if cfg.EnableOutline {
		t.Error("EnableOutline should be overridden to false")
	}
	if cfg.OutlineTimeout != 10*time.Second {
		t.Errorf("OutlineTimeout = %v, want 10s", cfg.OutlineTimeout)
	}
}

func TestFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv(EnvMemoryThreshold, "not-a-number")
	t.Setenv(EnvFuzzyThreshold, "1.5") // out of range
	t.Setenv(EnvMaxSearchResults, "-3")
	t.Setenv(EnvEnableOutline, "maybe")

	cfg := FromEnv()
	def := Default()

	if cfg.MemoryThreshold != def.MemoryThreshold {
		t.Errorf("MemoryThreshold = %d, want default %d", cfg.MemoryThreshold, def.MemoryThreshold)
	}
	if cfg.FuzzyThreshold != def.FuzzyThreshold {
		t.Errorf("FuzzyThreshold = %v, want default %v", cfg.FuzzyThreshold, def.FuzzyThreshold)
	}
	if cfg.MaxSearchResults != def.MaxSearchResults {
		t.Errorf("MaxSearchResults = %d, want default %d", cfg.MaxSearchResults, def.MaxSearchResults)
	}
	if cfg.EnableOutline != def.EnableOutline {
		t.Errorf("EnableOutline = %v, want default %v", cfg.EnableOutline, def.EnableOutline)
	}
}
