// Package search implements the command palette lookup over file names.
package search

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/sahilm/fuzzy"
)

// Match is one palette hit.
type Match struct {
	File models.File

	// MatchedIndexes are the rune offsets of Name that matched the query,
	// used to highlight them.
	MatchedIndexes []int
	Score          int
}

type fileSource []models.File

func (s fileSource) String(i int) string { return s[i].Name }
func (s fileSource) Len() int            { return len(s) }

// Files returns the files whose name fuzzy-matches query, best first.
// Folders (is_folder rows) are skipped. An empty query lists every file by
// name. At most limit matches are returned; limit <= 0 means no limit.
func Files(files []models.File, query string, limit int) []Match {
	candidates := make(fileSource, 0, len(files))
	for _, f := range files {
		if !f.IsFolder {
			candidates = append(candidates, f)
		}
	}

	var out []Match
	query = strings.TrimSpace(query)
	if query == "" {
		sorted := make(fileSource, len(candidates))
		copy(sorted, candidates)
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
		for _, f := range sorted {
			out = append(out, Match{File: f})
		}
	} else {
		// substring hits rank above scattered fuzzy hits
		for _, m := range fuzzy.FindFrom(query, candidates) {
			score := m.Score
			if strings.Contains(strings.ToLower(m.Str), strings.ToLower(query)) {
				score += 1000
			}
			out = append(out, Match{File: candidates[m.Index], MatchedIndexes: m.MatchedIndexes, Score: score})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
