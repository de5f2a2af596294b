package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// MarketDir returns the skytab-market config directory path
// ~/.config/skytab-market/
func MarketDir() string {
	return filepath.Join(homeDir, ".config", "skytab-market")
}

// ConfigPath returns the config.json file path
// ~/.config/skytab-market/config.json
func ConfigPath() string {
	return filepath.Join(MarketDir(), "config.json")
}

// FavoritesPath returns the favorites.json file path
// ~/.config/skytab-market/favorites.json
func FavoritesPath() string {
	return filepath.Join(MarketDir(), "favorites.json")
}

// PreferencesPath returns the preferences.json file path
// ~/.config/skytab-market/preferences.json
func PreferencesPath() string {
	return filepath.Join(MarketDir(), "preferences.json")
}

// CacheDir returns the cache directory path
// ~/.config/skytab-market/cache/
func CacheDir() string {
	return filepath.Join(MarketDir(), "cache")
}

// CatalogCachePath returns the cached catalog feed file path
// ~/.config/skytab-market/cache/catalog.json
func CatalogCachePath() string {
	return filepath.Join(CacheDir(), "catalog.json")
}

// SeedCachePath returns the hourly ordering seed file path
// ~/.config/skytab-market/cache/session_seed.json
func SeedCachePath() string {
	return filepath.Join(CacheDir(), "session_seed.json")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
