package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytab-app/market/internal/explorer"
)

func tempManager(t *testing.T) *Manager {
	t.Helper()
	return NewManagerAt(filepath.Join(t.TempDir(), "preferences.json"))
}

func TestLoadMissingFile(t *testing.T) {
	m := tempManager(t)
	assert.Equal(t, Preferences{}, m.Load())
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	m := NewManagerAt(path)
	assert.Equal(t, Preferences{}, m.Load())
}

func TestLoadMigratesLegacySort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sort":"newest"}`), 0644))

	m := NewManagerAt(path)
	assert.Equal(t, "trending", m.Load().SortBy)
}

func TestLoadDropsInvalidPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"perPage":17}`), 0644))

	m := NewManagerAt(path)
	assert.Zero(t, m.Load().PerPage)
}

// Fields returned to their default disappear from storage on the next
// write instead of being recorded explicitly.
func TestUpdateRemovesDefaults(t *testing.T) {
	m := tempManager(t)

	st := explorer.DefaultState()
	st.View = explorer.ViewList
	st.SortBy = explorer.SortTrending
	require.NoError(t, m.Update(st))

	p := m.Load()
	assert.Equal(t, "list", p.View)
	assert.Equal(t, "trending", p.SortBy)

	// Back to defaults: the written file loses both fields.
	require.NoError(t, m.Update(explorer.DefaultState()))
	assert.Equal(t, Preferences{}, m.Load())
}

func TestUpdatePersistsStickyFields(t *testing.T) {
	m := tempManager(t)

	st := explorer.DefaultState()
	st.TypeFilter = "quote_pack"
	st.PerPage = 48
	st.Query = "sunset" // not sticky
	st.Page = 4         // not sticky
	require.NoError(t, m.Update(st))

	p := m.Load()
	assert.Equal(t, Preferences{TypeFilter: "quote_pack", PerPage: 48}, p)
}

func TestApplyOnlyFillsDefaults(t *testing.T) {
	p := Preferences{View: "list", TypeFilter: "photo_pack", SortBy: "trending", PerPage: 24}

	st := explorer.DefaultState()
	st.SortBy = explorer.SortMostViewed // URL already set this

	p.Apply(&st)

	assert.Equal(t, explorer.SortMostViewed, st.SortBy, "explicit field untouched")
	assert.Equal(t, explorer.ViewList, st.View)
	assert.Equal(t, "photo_pack", st.TypeFilter)
	assert.Equal(t, 24, st.PerPage)
}

func TestApplyIgnoresInvalidValues(t *testing.T) {
	p := Preferences{View: "carousel", PerPage: 17}

	st := explorer.DefaultState()
	p.Apply(&st)

	assert.Equal(t, explorer.ViewGrid, st.View)
	assert.Equal(t, explorer.DefaultPageSize, st.PerPage)
}
