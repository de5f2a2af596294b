package catalog

// Item types served by the marketplace feed.
const (
	TypePhotoPack      = "photo_pack"
	TypeQuotePack      = "quote_pack"
	TypePresetSettings = "preset_settings"
)

// ItemTypes lists every known item type in display order.
var ItemTypes = []string{TypePhotoPack, TypeQuotePack, TypePresetSettings}

// Item represents a single marketplace catalog entry. Entries are
// read-only from the client's perspective; the feed owns them.
type Item struct {
	Name          string   `json:"name"` // stable identifier, unique within Type
	DisplayName   string   `json:"display_name"`
	Type          string   `json:"type"`
	Author        string   `json:"author,omitempty"`
	IconURL       string   `json:"icon_url,omitempty"`
	InCollections []string `json:"in_collections,omitempty"`
	Views         int      `json:"views,omitempty"`
	Downloads     int      `json:"downloads,omitempty"`
}

// InCollection reports whether the item belongs to the named collection.
func (it Item) InCollection(name string) bool {
	for _, c := range it.InCollections {
		if c == name {
			return true
		}
	}
	return false
}

// Collection represents a named grouping of items.
type Collection struct {
	Name        string `json:"name"` // unique identifier
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Img         string `json:"img,omitempty"`
}

// ContentTypes returns the distinct item types present among the
// collection's members, in ItemTypes order.
func (c Collection) ContentTypes(items []Item) []string {
	seen := make(map[string]bool)
	for _, it := range items {
		if it.InCollection(c.Name) {
			seen[it.Type] = true
		}
	}

	var types []string
	for _, t := range ItemTypes {
		if seen[t] {
			types = append(types, t)
		}
	}
	return types
}

// Catalog bundles the full marketplace feed.
type Catalog struct {
	Items       []Item       `json:"items"`
	Collections []Collection `json:"collections"`
}

// FindItem finds an item by type and name. Returns nil when absent.
func (c *Catalog) FindItem(itemType, name string) *Item {
	for i := range c.Items {
		if c.Items[i].Type == itemType && c.Items[i].Name == name {
			return &c.Items[i]
		}
	}
	return nil
}

// FindCollection finds a collection by name. Returns nil when absent.
func (c *Catalog) FindCollection(name string) *Collection {
	for i := range c.Collections {
		if c.Collections[i].Name == name {
			return &c.Collections[i]
		}
	}
	return nil
}
