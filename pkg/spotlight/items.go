// Package spotlight ranks short labels against a typed query, e.g. to
// narrow a long county dropdown.
package spotlight

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find returns the indices of words matching q, best match first. Matching
// is case-insensitive and ignores diacritics. An empty query matches every
// word in its original order.
func Find(q string, words []string) []int {
	q = strings.TrimSpace(q)
	if q == "" {
		out := make([]int, len(words))
		for i := range words {
			out[i] = i
		}
		return out
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	out := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.OriginalIndex)
	}
	return out
}

// Filter keeps the items whose label matches q, best match first.
func Filter[T any](q string, items []T, label func(T) string) []T {
	words := make([]string, len(items))
	for i, it := range items {
		words[i] = label(it)
	}
	idx := Find(q, words)
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
