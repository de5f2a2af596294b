// Package querystring converts explorer state to and from the deep-link
// query string shared between the explorer, the hosting application,
// and users pasting links. The encoded form omits every field sitting
// at its default, so links stay minimal.
package querystring

import (
	"net/url"
	"strconv"
	"time"

	"github.com/skytab-app/market/internal/explorer"
	"github.com/skytab-app/market/internal/prefs"
)

// WriteDebounce is the delay applied to free-text query writes so a
// burst of keystrokes produces one deep-link update.
const WriteDebounce = 300 * time.Millisecond

// Query parameter names. ParamLegacyQuery is accepted on read for old
// deep links but never written.
const (
	ParamQuery       = "q"
	ParamLegacyQuery = "search"
	ParamType        = "type"
	ParamCollection  = "collection"
	ParamSort        = "sort"
	ParamPage        = "page"
	ParamPerPage     = "pp"
	ParamView        = "view"
	ParamEmbed       = "embed"
	ParamPreview     = "preview"
)

// Decode builds explorer state from a query string and persisted
// preferences. Precedence per field: URL parameter > preference >
// hardcoded default. All parsing is defensive; malformed values fall
// back rather than erroring.
func Decode(v url.Values, p prefs.Preferences) explorer.State {
	st := explorer.DefaultState()

	if q := v.Get(ParamQuery); q != "" {
		st.Query = q
	} else if q := v.Get(ParamLegacyQuery); q != "" {
		st.Query = q
	}

	if t := v.Get(ParamType); t != "" {
		st.TypeFilter = t
	}

	st.Collection = v.Get(ParamCollection)

	if s := v.Get(ParamSort); s != "" {
		st.SortBy = explorer.MigrateSort(s)
	}

	if raw := v.Get(ParamPage); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			st.Page = page
		}
	}

	if raw := v.Get(ParamPerPage); raw != "" {
		if pp, err := strconv.Atoi(raw); err == nil && explorer.ValidPageSize(pp) {
			st.PerPage = pp
		}
	}

	switch explorer.ViewMode(v.Get(ParamView)) {
	case explorer.ViewGrid, explorer.ViewList:
		st.View = explorer.ViewMode(v.Get(ParamView))
	}

	st.Embed = v.Get(ParamEmbed) == "true"
	st.Preview = v.Get(ParamPreview) == "true"

	// Preferences only fill fields the URL left at default.
	p.Apply(&st)

	return st
}

// Encode serializes the non-default state fields. Embed-mode flags are
// always appended when active; they ride every link written while
// embedded and are never persisted.
func Encode(st explorer.State) url.Values {
	def := explorer.DefaultState()
	v := url.Values{}

	if st.Query != "" {
		v.Set(ParamQuery, st.Query)
	}
	if st.TypeFilter != def.TypeFilter && st.TypeFilter != "" {
		v.Set(ParamType, st.TypeFilter)
	}
	if st.Collection != "" {
		v.Set(ParamCollection, st.Collection)
	}
	if st.SortBy != def.SortBy {
		v.Set(ParamSort, string(st.SortBy))
	}
	if st.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(st.Page))
	}
	if st.PerPage != def.PerPage && st.PerPage != 0 {
		v.Set(ParamPerPage, strconv.Itoa(st.PerPage))
	}
	if st.View != def.View && st.View != "" {
		v.Set(ParamView, string(st.View))
	}
	if st.Embed {
		v.Set(ParamEmbed, "true")
	}
	if st.Preview {
		v.Set(ParamPreview, "true")
	}

	return v
}

// Parse decodes a raw query string (with or without a leading "?").
// Malformed input yields empty values, never an error.
func Parse(raw string) url.Values {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}

	v, err := url.ParseQuery(raw)
	if err != nil {
		return url.Values{}
	}
	return v
}
