package explorer

import (
	"strings"

	"github.com/skytab-app/market/internal/catalog"
)

// FavoriteSet answers membership queries for (category, itemID) pairs.
// Implemented by the favorites store; kept as an interface so the
// engine stays a pure function over its inputs.
type FavoriteSet interface {
	Contains(category, itemID string) bool
}

// emptyFavorites is used when no favorites store is wired in.
type emptyFavorites struct{}

func (emptyFavorites) Contains(string, string) bool { return false }

// MatchesType reports whether the item passes the type filter.
func MatchesType(it catalog.Item, typeFilter string) bool {
	return typeFilter == TypeAll || typeFilter == "" || it.Type == typeFilter
}

// MatchesCollection reports whether the item passes the collection filter.
func MatchesCollection(it catalog.Item, collection string) bool {
	return collection == "" || it.InCollection(collection)
}

// MatchesFavorites reports whether the item passes the favorites-only
// filter.
func MatchesFavorites(it catalog.Item, favoritesOnly bool, favs FavoriteSet) bool {
	return !favoritesOnly || favs.Contains(it.Type, it.Name)
}

// MatchesQuery reports whether the item matches the free-text query by
// case-insensitive substring against display name, name, or author.
// An empty (or all-whitespace) query matches everything.
func MatchesQuery(it catalog.Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(it.DisplayName), q) ||
		strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Author), q)
}

// Matches applies every filter predicate, AND-ed.
func Matches(it catalog.Item, st State, favs FavoriteSet) bool {
	if favs == nil {
		favs = emptyFavorites{}
	}

	return MatchesType(it, st.TypeFilter) &&
		MatchesCollection(it, st.Collection) &&
		MatchesFavorites(it, st.FavoritesOnly, favs) &&
		MatchesQuery(it, st.Query)
}

// Filter returns the items passing every predicate, in input order.
func Filter(items []catalog.Item, st State, favs FavoriteSet) []catalog.Item {
	var out []catalog.Item
	for _, it := range items {
		if Matches(it, st, favs) {
			out = append(out, it)
		}
	}
	return out
}
