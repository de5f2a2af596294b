package config

import (
	"encoding/json"
	"os"
	"sync"
)

// DefaultAPIBaseURL is the public marketplace feed endpoint.
const DefaultAPIBaseURL = "https://marketplace.skytab.app/api"

// DefaultCacheTTLMinutes controls how long the cached catalog feed is
// considered fresh before browse refetches it.
const DefaultCacheTTLMinutes = 60

// APIConfig contains marketplace feed settings
type APIConfig struct {
	BaseURL         string `json:"baseUrl"`         // marketplace API base URL
	CacheTTLMinutes int    `json:"cacheTtlMinutes"` // catalog cache freshness window
}

// Config represents the main configuration file structure
type Config struct {
	Locale string    `json:"locale"` // "auto" or ISO format (e.g., "fr-FR", "en-US")
	API    APIConfig `json:"api"`
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
		API: APIConfig{
			BaseURL:         DefaultAPIBaseURL,
			CacheTTLMinutes: DefaultCacheTTLMinutes,
		},
	}
}

// Load loads the configuration from file
func Load() (*Config, error) {
	cfgMu.RLock()
	defer cfgMu.RUnlock()

	return load()
}

func load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Backfill defaults for fields missing from older config files
	if config.Locale == "" {
		config.Locale = "auto"
	}
	if config.API.BaseURL == "" {
		config.API.BaseURL = DefaultAPIBaseURL
	}
	if config.API.CacheTTLMinutes <= 0 {
		config.API.CacheTTLMinutes = DefaultCacheTTLMinutes
	}

	return &config, nil
}

// Save saves the configuration to file
func Save(config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if err := EnsureDir(MarketDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// Reload reloads the configuration from file
func Reload() error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	newCfg, err := load()
	if err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetLocale sets the locale and saves
func SetLocale(locale string) error {
	config := Get()
	config.Locale = locale
	return Save(config)
}

// GetAPIBaseURL returns the configured marketplace API base URL
func GetAPIBaseURL() string {
	return Get().API.BaseURL
}

// SetAPIBaseURL sets the marketplace API base URL and saves
func SetAPIBaseURL(url string) error {
	config := Get()
	config.API.BaseURL = url
	return Save(config)
}

// GetCacheTTLMinutes returns the catalog cache freshness window
func GetCacheTTLMinutes() int {
	return Get().API.CacheTTLMinutes
}

// SetCacheTTLMinutes sets the catalog cache freshness window and saves
func SetCacheTTLMinutes(minutes int) error {
	config := Get()
	config.API.CacheTTLMinutes = minutes
	return Save(config)
}
