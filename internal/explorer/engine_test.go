package explorer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytab-app/market/internal/catalog"
)

// photoCatalog builds n photo-pack items; the first inCollection are
// members of the "featured" collection.
func photoCatalog(n, inCollection int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			Name:        fmt.Sprintf("pack-%02d", i+1),
			DisplayName: fmt.Sprintf("Pack %02d", i+1),
			Type:        catalog.TypePhotoPack,
			Views:       i,
			Downloads:   i,
		}
		if i < inCollection {
			items[i].InCollections = []string{"featured"}
		}
	}
	return items
}

func TestRunPaginationInvariant(t *testing.T) {
	engine := New("en-US")
	items := photoCatalog(25, 0)

	for _, perPage := range PageSizes {
		for page := 1; page <= 6; page++ {
			st := DefaultState()
			st.PerPage = perPage
			st.Page = page

			res := engine.Run(items, st, nil, 1)

			wantPages := (25 + perPage - 1) / perPage
			assert.Equal(t, wantPages, res.TotalPages, "pp=%d", perPage)
			assert.GreaterOrEqual(t, res.Page, 1)
			assert.LessOrEqual(t, res.Page, res.TotalPages)
		}
	}
}

func TestRunEmptyFilteredSet(t *testing.T) {
	engine := New("en-US")

	st := DefaultState()
	st.TypeFilter = catalog.TypeQuotePack

	res := engine.Run(photoCatalog(10, 0), st, nil, 1)

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.FilteredCount)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.Page)
}

// A 25-item catalog at 12 per page: page 1 shows 12 items across 3
// pages; narrowing to a 5-item collection collapses to one page.
func TestRunScenarioCollectionNarrowing(t *testing.T) {
	engine := New("en-US")
	items := photoCatalog(25, 5)

	st := DefaultState()
	res := engine.Run(items, st, nil, 1)

	require.Len(t, res.Items, 12)
	assert.Equal(t, 25, res.FilteredCount)
	assert.Equal(t, 3, res.TotalPages)

	// Filter change resets to page 1 via the setter.
	st.Page = 3
	st.SetCollection("featured")
	assert.Equal(t, 1, st.Page)

	res = engine.Run(items, st, nil, 1)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, 1, res.TotalPages)
}

// Search results are never paginated, whatever page the user was on.
func TestRunSearchBypassesPagination(t *testing.T) {
	engine := New("en-US")

	items := photoCatalog(25, 0)
	items[2].DisplayName = "Sunset Harbor"
	items[10].DisplayName = "Golden Sunset"
	items[20].DisplayName = "SUNSET Drive"

	st := DefaultState()
	st.Page = 3
	st.Query = "sunset"

	res := engine.Run(items, st, nil, 1)

	assert.Equal(t, 3, res.FilteredCount)
	assert.Len(t, res.Items, 3)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.Page)

	for _, it := range res.Items {
		assert.Contains(t, []string{"Sunset Harbor", "Golden Sunset", "SUNSET Drive"}, it.DisplayName)
	}
}

// Shrinking the filtered set clamps the page down, never up.
func TestRunClampsPageDown(t *testing.T) {
	engine := New("en-US")
	items := photoCatalog(25, 5)

	st := DefaultState()
	st.Page = 3

	res := engine.Run(items, st, nil, 1)
	assert.Equal(t, 3, res.Page)

	// Same page but only 5 items left: one page total.
	st.Collection = "featured"
	res = engine.Run(items, st, nil, 1)
	assert.Equal(t, 1, res.Page)
	assert.Len(t, res.Items, 5)
}

func TestRunPageSlicing(t *testing.T) {
	engine := New("en-US")
	items := photoCatalog(25, 0)

	st := DefaultState()
	st.SortBy = SortMostViewed // views descend 24..0
	st.Page = 3

	res := engine.Run(items, st, nil, 1)

	// Page 3 of 25 at 12 per page holds one item, the lowest-viewed.
	require.Len(t, res.Items, 1)
	assert.Equal(t, "pack-01", res.Items[0].Name)
}

func TestSuggest(t *testing.T) {
	engine := New("en-US")

	items := []catalog.Item{
		{Name: "a", DisplayName: "Sunset Harbor", Author: "ana"},
		{Name: "b", DisplayName: "Mountains", Author: "sunset-club"},
		{Name: "c", DisplayName: "Sunset Drive", Author: "leo"},
		{Name: "d", DisplayName: "Forest", Author: "mia"},
		{Name: "e", DisplayName: "Sunsets of Kyoto", Author: "rin"},
		{Name: "f", DisplayName: "Another Sunset", Author: "kai"},
		{Name: "g", DisplayName: "Last Sunset", Author: "zoe"},
	}

	t.Run("query too short", func(t *testing.T) {
		assert.Nil(t, engine.Suggest(items, "s"))
	})

	t.Run("matches display name and author in catalog order", func(t *testing.T) {
		got := engine.Suggest(items, "sunset")
		require.Len(t, got, 5) // capped at five
		assert.Equal(t, []string{"a", "b", "c", "e", "f"}, names(got))
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := engine.Suggest(items, "KYOTO")
		require.Len(t, got, 1)
		assert.Equal(t, "e", got[0].Name)
	})
}

func TestStateSettersResetPage(t *testing.T) {
	st := DefaultState()
	st.Page = 4

	st.SetTypeFilter(catalog.TypeQuotePack)
	assert.Equal(t, 1, st.Page)

	st.Page = 4
	st.SetSort(SortTrending)
	assert.Equal(t, 1, st.Page)

	st.Page = 4
	st.SetPerPage(24)
	assert.Equal(t, 1, st.Page)

	st.Page = 4
	st.SetFavoritesOnly(true)
	assert.Equal(t, 1, st.Page)

	// No-op changes keep the page.
	st.Page = 4
	st.SetFavoritesOnly(true)
	assert.Equal(t, 4, st.Page)

	// Invalid page sizes are ignored.
	st.SetPerPage(13)
	assert.Equal(t, 24, st.PerPage)
}

func TestStateReset(t *testing.T) {
	st := DefaultState()
	st.Query = "x"
	st.SortBy = SortTrending
	st.Embed = true
	st.Preview = true

	st.Reset()

	assert.Equal(t, "", st.Query)
	assert.Equal(t, SortRecommended, st.SortBy)
	assert.True(t, st.Embed, "embed flags survive a filter reset")
	assert.True(t, st.Preview)
}
