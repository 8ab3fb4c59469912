package ops

import (
	"github.com/peteretelej/largefile/internal/edit"
	"github.com/peteretelej/largefile/internal/fileaccess"
)

// EditInput carries a search/replace request. MaxReplacements <= 0 means
// replace a single occurrence.
type EditInput struct {
	Path            string
	SearchText      string
	ReplaceText     string
	Fuzzy           bool
	Preview         bool
	MaxReplacements int
}

// Edit applies (or previews) a search/replace edit. A committed change
// invalidates the file's cached sessions so the next overview rebuilds
// against the new content.
func Edit(d *Deps, in EditInput) (*edit.Result, error) {
	canonical, err := fileaccess.ResolvePath(in.Path)
	if err != nil {
		return nil, err
	}

	maxReplacements := in.MaxReplacements
	if maxReplacements <= 0 {
		maxReplacements = 1
	}

	res, err := d.Edit.Replace(canonical, in.SearchText, in.ReplaceText, in.Fuzzy, in.Preview, maxReplacements)
	if err != nil {
		return nil, err
	}
	if res.Success && !in.Preview {
		if ierr := d.Sessions.Invalidate(canonical); ierr != nil {
			d.Log.Warn().Err(ierr).Str("path", canonical).Msg("session invalidation failed")
		}
	}
	return res, nil
}
