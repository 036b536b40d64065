package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxTypos is the edit distance a word may be from the query and still match.
const maxTypos = 2

// fuzzyScore ranks text against query. Lower is better; ok is false when
// text does not match. Substring matches score 0, otherwise the word (or
// word prefix) closest to the query scores its edit distance.
func fuzzyScore(text, query string) (score int, ok bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0, true
	}
	text = strings.ToLower(text)
	if strings.Contains(text, query) {
		return 0, true
	}
	best := -1
	for _, word := range strings.Fields(text) {
		d := levenshtein.ComputeDistance(word, query)
		if len(word) > len(query) {
			d = min(d, levenshtein.ComputeDistance(word[:len(query)], query))
		}
		if best < 0 || d < best {
			best = d
		}
	}
	limit := maxTypos
	if len(query) <= 3 {
		limit = 1
	}
	if best < 0 || best > limit {
		return 0, false
	}
	return best, true
}

// filterIndices returns the positions of rows matching query, best first.
// Rows of equal score keep their list order.
func filterIndices(rows []string, query string) []int {
	type hit struct{ pos, score int }
	hits := make([]hit, 0, len(rows))
	for i, r := range rows {
		if s, ok := fuzzyScore(r, query); ok {
			hits = append(hits, hit{pos: i, score: s})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score < hits[b].score })
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.pos
	}
	return out
}
