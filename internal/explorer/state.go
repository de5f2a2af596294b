package explorer

// SortMode is one of the five catalog orderings.
type SortMode string

const (
	SortRecommended    SortMode = "recommended"
	SortTrending       SortMode = "trending"
	SortMostDownloaded SortMode = "most-downloaded"
	SortMostViewed     SortMode = "most-viewed"
	SortHiddenGems     SortMode = "hidden-gems"
)

// SortModes lists every sort mode in display order.
var SortModes = []SortMode{
	SortRecommended,
	SortTrending,
	SortMostDownloaded,
	SortMostViewed,
	SortHiddenGems,
}

// legacy sort values and the modes they migrated to
var legacySorts = map[string]SortMode{
	"newest":       SortTrending,
	"updated":      SortTrending,
	"name-asc":     SortRecommended,
	"name-desc":    SortRecommended,
	"least-viewed": SortHiddenGems,
}

// MigrateSort maps a raw sort value, including legacy spellings, to a
// valid SortMode. Unknown values fall back to SortRecommended.
// Idempotent: migrating an already-migrated value is a no-op.
func MigrateSort(raw string) SortMode {
	if mode, ok := legacySorts[raw]; ok {
		return mode
	}
	for _, mode := range SortModes {
		if raw == string(mode) {
			return mode
		}
	}
	return SortRecommended
}

// ViewMode selects the item layout.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// TypeAll disables type filtering.
const TypeAll = "all"

// PageSizes are the selectable items-per-page values.
var PageSizes = []int{12, 24, 48}

// DefaultPageSize is the items-per-page default.
const DefaultPageSize = 12

// ValidPageSize reports whether n is a selectable page size.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// State is the transient UI state driving the explorer.
type State struct {
	Query         string
	TypeFilter    string // item type or TypeAll
	Collection    string // collection name, "" means none
	SortBy        SortMode
	Page          int // 1-based
	PerPage       int
	FavoritesOnly bool
	View          ViewMode

	// Embed flags ride along with the state but are never persisted.
	Embed   bool
	Preview bool
}

// DefaultState returns the hardcoded state defaults.
func DefaultState() State {
	return State{
		TypeFilter: TypeAll,
		SortBy:     SortRecommended,
		Page:       1,
		PerPage:    DefaultPageSize,
		View:       ViewGrid,
	}
}

// The setters below funnel every filter change through the page-reset
// rule: changing what is shown always returns to page 1.

// SetQuery updates the free-text query.
func (s *State) SetQuery(q string) {
	if s.Query == q {
		return
	}
	s.Query = q
	s.Page = 1
}

// SetTypeFilter updates the type filter and resets the page.
func (s *State) SetTypeFilter(t string) {
	if t == "" {
		t = TypeAll
	}
	if s.TypeFilter == t {
		return
	}
	s.TypeFilter = t
	s.Page = 1
}

// SetCollection updates the collection filter and resets the page.
func (s *State) SetCollection(name string) {
	if s.Collection == name {
		return
	}
	s.Collection = name
	s.Page = 1
}

// SetSort updates the sort mode and resets the page.
func (s *State) SetSort(mode SortMode) {
	if s.SortBy == mode {
		return
	}
	s.SortBy = mode
	s.Page = 1
}

// SetPerPage updates items-per-page and resets the page. Invalid sizes
// are ignored.
func (s *State) SetPerPage(n int) {
	if !ValidPageSize(n) || s.PerPage == n {
		return
	}
	s.PerPage = n
	s.Page = 1
}

// SetFavoritesOnly updates the favorites-only flag and resets the page.
func (s *State) SetFavoritesOnly(on bool) {
	if s.FavoritesOnly == on {
		return
	}
	s.FavoritesOnly = on
	s.Page = 1
}

// ClampPage constrains the page to [1, totalPages]. Pages are only ever
// clamped down when the filtered set shrinks, never bumped up.
func (s *State) ClampPage(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
}

// Reset restores every filter to its default while keeping the embed
// flags, which belong to the hosting context rather than the user.
func (s *State) Reset() {
	embed, preview := s.Embed, s.Preview
	*s = DefaultState()
	s.Embed = embed
	s.Preview = preview
}
