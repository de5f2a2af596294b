package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytab-app/market/internal/catalog"
)

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestSortTrending(t *testing.T) {
	items := []catalog.Item{
		{Name: "a", DisplayName: "A", Views: 100, Downloads: 0},   // 30
		{Name: "b", DisplayName: "B", Views: 0, Downloads: 100},   // 70
		{Name: "c", DisplayName: "C", Views: 200, Downloads: 200}, // 200
	}

	Sort(items, SortTrending, 0, NewCollator("en-US"))

	assert.Equal(t, []string{"c", "b", "a"}, names(items))
}

func TestSortMostDownloaded(t *testing.T) {
	items := []catalog.Item{
		{Name: "a", DisplayName: "A", Downloads: 5},
		{Name: "b", DisplayName: "B", Downloads: 50},
	}

	Sort(items, SortMostDownloaded, 0, NewCollator("en-US"))

	assert.Equal(t, []string{"b", "a"}, names(items))
}

func TestSortHiddenGemsAscendingViews(t *testing.T) {
	items := []catalog.Item{
		{Name: "popular", DisplayName: "Popular", Views: 9000},
		{Name: "gem", DisplayName: "Gem", Views: 3},
		{Name: "mid", DisplayName: "Mid", Views: 400},
	}

	Sort(items, SortHiddenGems, 0, NewCollator("en-US"))

	assert.Equal(t, []string{"gem", "mid", "popular"}, names(items))
}

// Ties on the primary score are broken by display name ascending.
func TestSortTieBreakByDisplayName(t *testing.T) {
	tests := []struct {
		name string
		mode SortMode
	}{
		{"trending", SortTrending},
		{"most downloaded", SortMostDownloaded},
		{"most viewed", SortMostViewed},
		{"hidden gems", SortHiddenGems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []catalog.Item{
				{Name: "z", DisplayName: "Zebra", Views: 10, Downloads: 10},
				{Name: "a", DisplayName: "Antelope", Views: 10, Downloads: 10},
				{Name: "m", DisplayName: "Meerkat", Views: 10, Downloads: 10},
			}

			Sort(items, tt.mode, 0, NewCollator("en-US"))

			assert.Equal(t, []string{"a", "m", "z"}, names(items))
		})
	}
}

func TestSortRecommendedDeterministic(t *testing.T) {
	collator := NewCollator("en-US")

	first := testItems()
	second := testItems()

	Sort(first, SortRecommended, 42, collator)
	Sort(second, SortRecommended, 42, collator)

	assert.Equal(t, names(first), names(second), "same seed must give the same order")
}

func TestSortRecommendedSeedRotation(t *testing.T) {
	collator := NewCollator("en-US")

	// A rotating seed should reorder some seed value; try a few in case
	// one happens to collide.
	base := testItems()
	Sort(base, SortRecommended, 1, collator)

	changed := false
	for seed := int64(2); seed < 12; seed++ {
		other := testItems()
		Sort(other, SortRecommended, seed, collator)
		if !assert.ObjectsAreEqual(names(base), names(other)) {
			changed = true
			break
		}
	}

	assert.True(t, changed, "ordering should change across seeds")

	// Sorting never mutates item data, only order.
	sorted := testItems()
	Sort(sorted, SortRecommended, 7, collator)
	require.ElementsMatch(t, testItems(), sorted)
}

func TestMigrateSort(t *testing.T) {
	tests := []struct {
		raw  string
		want SortMode
	}{
		{"newest", SortTrending},
		{"updated", SortTrending},
		{"name-asc", SortRecommended},
		{"name-desc", SortRecommended},
		{"least-viewed", SortHiddenGems},
		{"trending", SortTrending},
		{"hidden-gems", SortHiddenGems},
		{"recommended", SortRecommended},
		{"", SortRecommended},
		{"garbage", SortRecommended},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MigrateSort(tt.raw))
		})
	}
}

// Migration is idempotent: migrating a migrated value is a no-op.
func TestMigrateSortIdempotent(t *testing.T) {
	inputs := []string{"newest", "updated", "name-asc", "name-desc", "least-viewed",
		"recommended", "trending", "most-downloaded", "most-viewed", "hidden-gems"}

	for _, raw := range inputs {
		once := MigrateSort(raw)
		twice := MigrateSort(string(once))
		assert.Equal(t, once, twice, "migrate(migrate(%q))", raw)
	}
}
