package querystring

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skytab-app/market/internal/explorer"
	"github.com/skytab-app/market/internal/prefs"
)

func TestDecodeDefaults(t *testing.T) {
	st := Decode(url.Values{}, prefs.Preferences{})
	assert.Equal(t, explorer.DefaultState(), st)
}

func TestDecodePrecedence(t *testing.T) {
	// URL sets sort and type; preferences set sort, view, and perPage.
	v := Parse("?sort=trending&type=quote_pack")
	p := prefs.Preferences{SortBy: "most-viewed", View: "list", PerPage: 48}

	st := Decode(v, p)

	// URL wins where present, preferences fill the rest.
	assert.Equal(t, explorer.SortTrending, st.SortBy)
	assert.Equal(t, "quote_pack", st.TypeFilter)
	assert.Equal(t, explorer.ViewList, st.View)
	assert.Equal(t, 48, st.PerPage)
}

func TestDecodeLegacyQueryParam(t *testing.T) {
	st := Decode(Parse("search=sunset"), prefs.Preferences{})
	assert.Equal(t, "sunset", st.Query)

	// q wins over the legacy spelling when both appear.
	st = Decode(Parse("q=modern&search=sunset"), prefs.Preferences{})
	assert.Equal(t, "modern", st.Query)
}

func TestDecodeMigratesLegacySort(t *testing.T) {
	for raw, want := range map[string]explorer.SortMode{
		"newest":       explorer.SortTrending,
		"updated":      explorer.SortTrending,
		"name-asc":     explorer.SortRecommended,
		"name-desc":    explorer.SortRecommended,
		"least-viewed": explorer.SortHiddenGems,
		"garbage":      explorer.SortRecommended,
	} {
		st := Decode(Parse("sort="+raw), prefs.Preferences{})
		assert.Equal(t, want, st.SortBy, "sort=%s", raw)
	}
}

func TestDecodeDefensiveParsing(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, st explorer.State)
	}{
		{
			name:  "non-numeric page",
			query: "page=abc",
			check: func(t *testing.T, st explorer.State) {
				assert.Equal(t, 1, st.Page)
			},
		},
		{
			name:  "negative page",
			query: "page=-3",
			check: func(t *testing.T, st explorer.State) {
				assert.Equal(t, 1, st.Page)
			},
		},
		{
			name:  "invalid page size",
			query: "pp=13",
			check: func(t *testing.T, st explorer.State) {
				assert.Equal(t, explorer.DefaultPageSize, st.PerPage)
			},
		},
		{
			name:  "unknown view",
			query: "view=carousel",
			check: func(t *testing.T, st explorer.State) {
				assert.Equal(t, explorer.ViewGrid, st.View)
			},
		},
		{
			name:  "embed requires exact true",
			query: "embed=1&preview=yes",
			check: func(t *testing.T, st explorer.State) {
				assert.False(t, st.Embed)
				assert.False(t, st.Preview)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Decode(Parse(tt.query), prefs.Preferences{}))
		})
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	v := Encode(explorer.DefaultState())
	assert.Empty(t, v.Encode())
}

func TestEncodeNonDefaults(t *testing.T) {
	st := explorer.DefaultState()
	st.Query = "sunset"
	st.TypeFilter = "photo_pack"
	st.Collection = "nature"
	st.SortBy = explorer.SortTrending
	st.Page = 3
	st.PerPage = 24
	st.View = explorer.ViewList

	v := Encode(st)

	assert.Equal(t, "sunset", v.Get(ParamQuery))
	assert.Equal(t, "photo_pack", v.Get(ParamType))
	assert.Equal(t, "nature", v.Get(ParamCollection))
	assert.Equal(t, "trending", v.Get(ParamSort))
	assert.Equal(t, "3", v.Get(ParamPage))
	assert.Equal(t, "24", v.Get(ParamPerPage))
	assert.Equal(t, "list", v.Get(ParamView))
	assert.False(t, v.Has(ParamLegacyQuery), "legacy spelling is never written")
}

func TestEncodeEmbedFlagsAlwaysRide(t *testing.T) {
	st := explorer.DefaultState()
	st.Embed = true
	st.Preview = true

	v := Encode(st)

	assert.Equal(t, "true", v.Get(ParamEmbed))
	assert.Equal(t, "true", v.Get(ParamPreview))
}

// A legacy deep link round-trips to the migrated spelling: decoding
// sort=newest and re-encoding writes sort=trending.
func TestLegacySortRoundTrip(t *testing.T) {
	st := Decode(Parse("?sort=newest&page=2"), prefs.Preferences{})
	v := Encode(st)

	assert.Equal(t, "trending", v.Get(ParamSort))
	assert.Equal(t, "2", v.Get(ParamPage))
}

func TestParse(t *testing.T) {
	v := Parse("?q=sunset&page=2")
	assert.Equal(t, "sunset", v.Get(ParamQuery))
	assert.Equal(t, "2", v.Get(ParamPage))

	v = Parse("q=no-question-mark")
	assert.Equal(t, "no-question-mark", v.Get(ParamQuery))

	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("%zz=bad"))
}
