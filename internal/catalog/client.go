package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/skytab-app/market/internal/config"
)

// Client fetches the marketplace feed and keeps an on-disk cache so
// repeated invocations within the freshness window skip the network.
type Client struct {
	BaseURL    string
	CachePath  string
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// cachedCatalog is the catalog.json cache file structure
type cachedCatalog struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Catalog   Catalog   `json:"catalog"`
}

// NewClient creates a catalog client from the current configuration.
func NewClient() *Client {
	return &Client{
		BaseURL:   config.GetAPIBaseURL(),
		CachePath: config.CatalogCachePath(),
		CacheTTL:  time.Duration(config.GetCacheTTLMinutes()) * time.Minute,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Load returns the catalog, preferring a fresh cache. When the cache is
// stale or missing it refetches the feed; if that fails but a stale
// cache exists, the stale copy is returned rather than nothing.
func (c *Client) Load(ctx context.Context) (*Catalog, error) {
	if cached, ok := c.readCache(); ok {
		if time.Since(cached.FetchedAt) < c.CacheTTL {
			return &cached.Catalog, nil
		}

		fresh, err := c.Refresh(ctx)
		if err != nil {
			return &cached.Catalog, nil
		}
		return fresh, nil
	}

	return c.Refresh(ctx)
}

// Refresh fetches the feed unconditionally and rewrites the cache.
func (c *Client) Refresh(ctx context.Context) (*Catalog, error) {
	var catalog Catalog

	if err := c.fetchJSON(ctx, "/items", &catalog.Items); err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	if err := c.fetchJSON(ctx, "/collections", &catalog.Collections); err != nil {
		return nil, fmt.Errorf("fetch collections: %w", err)
	}

	// Cache write failures are ignored: the feed was fetched, only the
	// next invocation pays for the miss.
	c.writeCache(&catalog)

	return &catalog, nil
}

func (c *Client) fetchJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) readCache() (*cachedCatalog, bool) {
	data, err := os.ReadFile(c.CachePath)
	if err != nil {
		return nil, false
	}

	var cached cachedCatalog
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	if len(cached.Catalog.Items) == 0 {
		return nil, false
	}

	return &cached, true
}

func (c *Client) writeCache(catalog *Catalog) {
	if err := config.EnsureDir(filepath.Dir(c.CachePath)); err != nil {
		return
	}

	data, err := json.MarshalIndent(cachedCatalog{
		FetchedAt: time.Now(),
		Catalog:   *catalog,
	}, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(c.CachePath, data, 0644)
}
