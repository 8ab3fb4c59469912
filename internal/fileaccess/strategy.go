package fileaccess

import "github.com/peteretelej/largefile/internal/config"

// Strategy is the technique used to read a file based on its size.
type Strategy string

const (
	StrategyMemory    Strategy = "memory"
	StrategyMapped    Strategy = "mapped"
	StrategyStreaming Strategy = "streaming"
)

// ChooseStrategy maps a file size to an access strategy. Both boundaries are
// inclusive on the upper strategy: a file exactly at the memory threshold is
// mapped, and a file exactly at the mmap threshold streams.
func ChooseStrategy(size int64, cfg *config.Config) Strategy {
	switch {
	case size < cfg.MemoryThreshold:
		return StrategyMemory
	case size < cfg.MmapThreshold:
		return StrategyMapped
	default:
		return StrategyStreaming
	}
}
