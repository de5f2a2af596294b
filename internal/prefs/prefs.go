// Package prefs persists the explorer's sticky preferences: view mode,
// type filter, sort mode, and items-per-page. Fields sitting at their
// default value are removed from storage rather than written, so the
// preferences file only ever records deviations.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/skytab-app/market/internal/config"
	"github.com/skytab-app/market/internal/explorer"
)

// Preferences is the preferences.json structure.
type Preferences struct {
	View       string `json:"view,omitempty"`
	TypeFilter string `json:"type,omitempty"`
	SortBy     string `json:"sort,omitempty"`
	PerPage    int    `json:"perPage,omitempty"`
}

// Manager loads and saves preferences. Read failures degrade to
// in-memory defaults and are never surfaced to the user.
type Manager struct {
	mu   sync.RWMutex
	path string
}

// NewManager creates a preferences manager for the default path.
func NewManager() *Manager {
	return &Manager{path: config.PreferencesPath()}
}

// NewManagerAt creates a preferences manager for an explicit path.
func NewManagerAt(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the persisted preferences. Missing or malformed files
// return empty preferences, never an error. Legacy sort spellings are
// migrated on read; the migrated value is written back on the next
// Update so the legacy spelling never resurfaces.
func (m *Manager) Load() Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return Preferences{}
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}
	}

	if p.SortBy != "" {
		p.SortBy = string(explorer.MigrateSort(p.SortBy))
	}
	if p.PerPage != 0 && !explorer.ValidPageSize(p.PerPage) {
		p.PerPage = 0
	}

	return p
}

// Update derives sticky preferences from the explorer state and writes
// them immediately. Default-valued fields are zeroed so omitempty drops
// them from the file.
func (m *Manager) Update(st explorer.State) error {
	p := Preferences{}

	if st.View != explorer.ViewGrid && st.View != "" {
		p.View = string(st.View)
	}
	if st.TypeFilter != explorer.TypeAll && st.TypeFilter != "" {
		p.TypeFilter = st.TypeFilter
	}
	if st.SortBy != explorer.SortRecommended && st.SortBy != "" {
		p.SortBy = string(st.SortBy)
	}
	if st.PerPage != explorer.DefaultPageSize && st.PerPage != 0 {
		p.PerPage = st.PerPage
	}

	return m.save(p)
}

func (m *Manager) save(p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := config.EnsureDir(filepath.Dir(m.path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.path, data, 0644)
}

// Apply overlays persisted preferences onto a state. URL-provided
// fields take precedence, so Apply only fills fields still at their
// default.
func (p Preferences) Apply(st *explorer.State) {
	def := explorer.DefaultState()

	if st.View == def.View && p.View != "" {
		if v := explorer.ViewMode(p.View); v == explorer.ViewGrid || v == explorer.ViewList {
			st.View = v
		}
	}
	if st.TypeFilter == def.TypeFilter && p.TypeFilter != "" {
		st.TypeFilter = p.TypeFilter
	}
	if st.SortBy == def.SortBy && p.SortBy != "" {
		st.SortBy = explorer.MigrateSort(p.SortBy)
	}
	if st.PerPage == def.PerPage && explorer.ValidPageSize(p.PerPage) {
		st.PerPage = p.PerPage
	}
}
