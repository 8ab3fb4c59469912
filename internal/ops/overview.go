package ops

import "github.com/peteretelej/largefile/internal/outline"

// OverviewInput identifies the file to summarize.
type OverviewInput struct {
	Path string
}

// OverviewOutput is the orientation summary for a file: enough structure and
// metadata to plan targeted searches and reads without pulling the content.
type OverviewOutput struct {
	Path         string         `json:"path"`
	LineCount    int            `json:"line_count"`
	FileSize     int64          `json:"file_size"`
	Encoding     string         `json:"encoding"`
	HasLongLines bool           `json:"has_long_lines"`
	Outline      []outline.Item `json:"outline"`
	SearchHints  []string       `json:"search_hints"`
}

// Overview loads (or reuses) the file's session and assembles the summary.
// Outline extraction is best-effort: a missing or failing provider degrades
// to an empty outline rather than failing the call.
func Overview(d *Deps, in OverviewInput) (*OverviewOutput, error) {
	s, err := d.Sessions.Load(in.Path)
	if err != nil {
		return nil, err
	}

	items := []outline.Item{}
	if d.Outline != nil {
		content, readErr := d.Reader.Read(s.CanonicalPath)
		if readErr == nil {
			if got, oerr := d.Outline.Outline(s.CanonicalPath, content); oerr == nil && got != nil {
				items = got
			} else if oerr != nil {
				d.Log.Debug().Err(oerr).Str("path", s.CanonicalPath).Msg("outline extraction failed")
			}
		} else {
			d.Log.Debug().Err(readErr).Str("path", s.CanonicalPath).Msg("outline read failed")
		}
	}

	return &OverviewOutput{
		Path:         s.CanonicalPath,
		LineCount:    s.LineCount,
		FileSize:     s.FileSize,
		Encoding:     s.Encoding,
		HasLongLines: s.HasLongLines,
		Outline:      items,
		SearchHints:  searchHints(s.FileSize),
	}, nil
}

// searchHints suggests starting patterns. Small files get broad structural
// hints; large files get patterns that tend to stay selective.
func searchHints(size int64) []string {
	if size < 10000 {
		return []string{"def ", "class ", "import ", "function"}
	}
	return []string{"def ", "class ", "TODO", "FIXME"}
}
