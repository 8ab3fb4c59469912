// Package ops implements the boundary operations exposed to the tool layer:
// overview, search, read, and edit. Each operation takes typed input and
// returns typed output; errors carry the structured taxonomy from
// internal/errors.
package ops

import (
	"github.com/rs/zerolog"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/edit"
	"github.com/peteretelej/largefile/internal/fileaccess"
	"github.com/peteretelej/largefile/internal/outline"
	"github.com/peteretelej/largefile/internal/search"
	"github.com/peteretelej/largefile/internal/session"
)

// Result caps applied after merging; exact matches are never starved by an
// earlier cut.
const MaxSearchLimit = 100

// Deps bundles the engines the operations run on. The session cache is an
// explicit injected object, never package-global state.
type Deps struct {
	Cfg      *config.Config
	Reader   *fileaccess.Reader
	Sessions *session.Cache
	Search   *search.Engine
	Edit     *edit.Engine
	Outline  outline.Provider // nil when outlining is disabled
	Log      zerolog.Logger
}

// NewDeps wires the default engine stack for the given configuration.
func NewDeps(cfg *config.Config, log zerolog.Logger) *Deps {
	reader := fileaccess.NewReader(cfg, fileaccess.ChardetDetector{})
	searchEngine := search.NewEngine(reader, search.SequenceMatcher{}, cfg)
	backups := edit.NewBackupStore(cfg.BackupDir)

	var provider outline.Provider
	if cfg.EnableOutline {
		provider = outline.NewPatternProvider(cfg.OutlineTimeout)
	}

	return &Deps{
		Cfg:      cfg,
		Reader:   reader,
		Sessions: session.NewCache(cfg, reader),
		Search:   searchEngine,
		Edit:     edit.NewEngine(reader, searchEngine, backups, log),
		Outline:  provider,
		Log:      log,
	}
}
