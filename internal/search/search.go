package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/vitrine/internal/gallery"
)

// entrySource adapts gallery entries for fuzzy matching over the text
// a visitor actually sees: caption first, alt as fallback.
type entrySource []gallery.Entry

func (e entrySource) String(i int) string {
	if e[i].Caption != "" {
		return e[i].Caption
	}
	return e[i].Alt
}

func (e entrySource) Len() int { return len(e) }

// Filter returns the indices of entries matching query, best match
// first. An empty query matches everything in original order.
func Filter(query string, entries []gallery.Entry) []int {
	if query == "" {
		indices := make([]int, len(entries))
		for i := range entries {
			indices[i] = i
		}
		return indices
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))
	indices := make([]int, 0, len(matches))
	for _, m := range matches {
		indices = append(indices, m.Index)
	}
	return indices
}
