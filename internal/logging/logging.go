// Package logging configures the process-wide zerolog logger.
//
// All log output goes to stderr: in MCP server mode stdout carries the
// protocol stream and must stay clean.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Setup returns a logger writing to stderr at the given level. Unknown level
// names fall back to info.
func Setup(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
