package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/skytab-app/market/internal/catalog"
)

// Result represents a ranked search hit.
type Result struct {
	Item  catalog.Item
	Score int // Higher is better
}

// itemSearchable wraps catalog items for fuzzy searching
type itemSearchable []catalog.Item

// String returns the searchable string for an item
func (s itemSearchable) String(i int) string {
	it := s[i]
	parts := []string{it.DisplayName, it.Name}

	if it.Author != "" {
		parts = append(parts, it.Author)
	}
	parts = append(parts, it.Type)

	return strings.ToLower(strings.Join(parts, " "))
}

// Len returns the number of items
func (s itemSearchable) Len() int {
	return len(s)
}

// FuzzySearch performs a fuzzy search across the catalog, ranked by
// match score descending.
func FuzzySearch(items []catalog.Item, query string) []Result {
	query = strings.ToLower(query)

	matches := fuzzy.FindFrom(query, itemSearchable(items))

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Item:  items[match.Index],
			Score: match.Score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}
