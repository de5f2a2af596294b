package explorer

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/skytab-app/market/internal/catalog"
)

// NewCollator builds the locale-aware comparator used for name
// tie-breaks. Unparseable locales fall back to English.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag)
}

// trendingScore weights downloads over views.
func trendingScore(it catalog.Item) float64 {
	return float64(it.Views)*0.3 + float64(it.Downloads)*0.7
}

// orderHash is a 32-bit rolling multiply-xor hash of the item name,
// seeded so the "recommended" ordering rotates hourly while staying
// stable within the hour.
func orderHash(name string, seed int64) uint32 {
	h := uint32(seed) ^ 0x811c9dc5
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return h
}

// Sort orders items in place according to the sort mode. Every
// score-based mode breaks ties by display name ascending under the
// collator's locale.
func Sort(items []catalog.Item, mode SortMode, seed int64, coll *collate.Collator) {
	byName := func(a, b catalog.Item) bool {
		return coll.CompareString(a.DisplayName, b.DisplayName) < 0
	}

	switch mode {
	case SortTrending:
		sort.SliceStable(items, func(i, j int) bool {
			si, sj := trendingScore(items[i]), trendingScore(items[j])
			if si != sj {
				return si > sj
			}
			return byName(items[i], items[j])
		})
	case SortMostDownloaded:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Downloads != items[j].Downloads {
				return items[i].Downloads > items[j].Downloads
			}
			return byName(items[i], items[j])
		})
	case SortMostViewed:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Views != items[j].Views {
				return items[i].Views > items[j].Views
			}
			return byName(items[i], items[j])
		})
	case SortHiddenGems:
		// Ascending views surfaces the least-seen items.
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Views != items[j].Views {
				return items[i].Views < items[j].Views
			}
			return byName(items[i], items[j])
		})
	default: // SortRecommended
		sort.SliceStable(items, func(i, j int) bool {
			return orderHash(items[i].Name, seed) < orderHash(items[j].Name, seed)
		})
	}
}
