// Package favorites is a small durable set of (category, itemID) pairs
// backed by a JSON file in the user config dir. Mutation happens only
// through Toggle, so every heart icon across the UI observes the same
// sequence of states.
package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/skytab-app/market/internal/config"
	"github.com/skytab-app/market/internal/events"
)

// Key identifies one favorited item.
type Key struct {
	Category string `json:"category"`
	ItemID   string `json:"id"`
}

// fileFormat is the favorites.json structure.
type fileFormat struct {
	Version   int   `json:"version"`
	Favorites []Key `json:"favorites"`
}

// Store holds the favorites set. Lookups are valid before Load
// completes (they report false); Loaded tells UI that wants to gate
// rendering on hydration.
type Store struct {
	mu     sync.RWMutex
	path   string
	keys   []Key
	index  map[Key]struct{}
	loaded bool
	broker *events.Broker
}

// NewStore creates a favorites store at the default path.
func NewStore(broker *events.Broker) *Store {
	return NewStoreAt(config.FavoritesPath(), broker)
}

// NewStoreAt creates a favorites store at an explicit path.
func NewStoreAt(path string, broker *events.Broker) *Store {
	return &Store{
		path:   path,
		index:  make(map[Key]struct{}),
		broker: broker,
	}
}

// Load hydrates the set from disk. A missing or unreadable file leaves
// the set empty; favoriting then degrades to session-only behavior.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loaded = true }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return
	}

	s.keys = f.Favorites
	s.index = make(map[Key]struct{}, len(f.Favorites))
	for _, k := range f.Favorites {
		s.index[k] = struct{}{}
	}
}

// Loaded reports whether the initial read from storage has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// IsFavorite reports membership. Safe to call before Load; it simply
// returns false then.
func (s *Store) IsFavorite(category, itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[Key{Category: category, ItemID: itemID}]
	return ok
}

// Contains implements explorer.FavoriteSet.
func (s *Store) Contains(category, itemID string) bool {
	return s.IsFavorite(category, itemID)
}

// Toggle flips membership for the pair, persists the set, and notifies
// subscribers. Persistence failures are swallowed: the in-memory set
// stays correct for the session.
func (s *Store) Toggle(category, itemID string) {
	s.mu.Lock()

	k := Key{Category: category, ItemID: itemID}
	if _, ok := s.index[k]; ok {
		delete(s.index, k)
		for i, existing := range s.keys {
			if existing == k {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
	} else {
		s.index[k] = struct{}{}
		s.keys = append(s.keys, k)
	}

	s.persistLocked()
	s.mu.Unlock()

	if s.broker != nil {
		s.broker.Publish(events.TopicFavoritesChanged, k)
	}
}

// Favorites returns the favorited keys in toggle order.
func (s *Store) Favorites() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Count returns the number of favorited items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

func (s *Store) persistLocked() {
	if err := config.EnsureDir(filepath.Dir(s.path)); err != nil {
		return
	}

	data, err := json.MarshalIndent(fileFormat{Version: 1, Favorites: s.keys}, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(s.path, data, 0644)
}
