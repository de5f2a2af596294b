// Package explorer implements the marketplace explorer's query engine:
// a pure derivation of a displayed item page from the catalog, the
// current filter/sort/pagination state, and the favorites set.
package explorer

import (
	"strings"

	"golang.org/x/text/collate"

	"github.com/skytab-app/market/internal/catalog"
)

// maxSuggestions caps the autocomplete dropdown size.
const maxSuggestions = 5

// minSuggestionQuery is the minimum query length for suggestions.
const minSuggestionQuery = 2

// Result is one derived page of the catalog plus count metadata.
type Result struct {
	Items         []catalog.Item
	FilteredCount int
	TotalPages    int
	Page          int // the effective (clamped) page
}

// Engine derives explorer results. It holds only the locale collator;
// Run has no side effects and may be recomputed on every state change.
type Engine struct {
	coll *collate.Collator
}

// New creates an engine with a collator for the given locale.
func New(locale string) *Engine {
	return &Engine{coll: NewCollator(locale)}
}

// Run filters, sorts, and paginates the catalog for the given state.
// A non-empty query bypasses pagination entirely: search results come
// back as one unpaginated list.
func (e *Engine) Run(items []catalog.Item, st State, favs FavoriteSet, seed int64) Result {
	if st.PerPage <= 0 {
		st.PerPage = DefaultPageSize
	}

	filtered := Filter(items, st, favs)
	Sort(filtered, st.SortBy, seed, e.coll)

	count := len(filtered)
	totalPages := (count + st.PerPage - 1) / st.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	if strings.TrimSpace(st.Query) != "" {
		return Result{
			Items:         filtered,
			FilteredCount: count,
			TotalPages:    1,
			Page:          1,
		}
	}

	page := st.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * st.PerPage
	end := start + st.PerPage
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return Result{
		Items:         filtered[start:end],
		FilteredCount: count,
		TotalPages:    totalPages,
		Page:          page,
	}
}

// Suggest returns up to five items whose display name or author
// contains the query, in catalog order. Queries shorter than two
// characters return nothing.
func (e *Engine) Suggest(items []catalog.Item, query string) []catalog.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minSuggestionQuery {
		return nil
	}

	var out []catalog.Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.DisplayName), q) ||
			strings.Contains(strings.ToLower(it.Author), q) {
			out = append(out, it)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
