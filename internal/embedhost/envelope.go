// Package embedhost implements the message contract between an
// embedded marketplace explorer and its hosting application. Messages
// are one-way {type, payload} notifications: no acknowledgements, no
// retries, no delivery guarantee. The explorer stays fully usable when
// nothing is listening on the other end.
package embedhost

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skytab-app/market/internal/catalog"
)

// Outbound message types (explorer -> host).
const (
	TypeReady          = "marketplace:ready"
	TypeNavigation     = "marketplace:navigation"
	TypeSearch         = "marketplace:search"
	TypeInstall        = "marketplace:item:install"
	TypeUninstall      = "marketplace:item:uninstall"
	TypeCheckInstalled = "marketplace:item:check-installed"
	TypeLightbox       = "marketplace:lightbox"
)

// Inbound message types (host -> explorer).
const (
	TypeConfig    = "marketplace:config"
	TypeInstalled = "marketplace:item:installed"
)

var inboundTypes = map[string]bool{
	TypeConfig:    true,
	TypeInstalled: true,
}

// Envelope is the wire shape of every message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEnvelope marshals a payload into an envelope. A nil payload is
// encoded as JSON null.
func NewEnvelope(msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return Envelope{Type: msgType, Payload: data}, nil
}

// ValidateInbound checks that an envelope received from the host is one
// the explorer understands. Unknown or malformed envelopes are dropped
// by the caller, never treated as fatal.
func (e Envelope) ValidateInbound() error {
	if e.Type == "" {
		return fmt.Errorf("message type is required")
	}
	if !strings.HasPrefix(e.Type, "marketplace:") {
		return fmt.Errorf("unexpected message namespace: %q", e.Type)
	}
	if !inboundTypes[e.Type] {
		return fmt.Errorf("unknown inbound message type: %q", e.Type)
	}
	return nil
}

// NavigationPayload accompanies TypeNavigation.
type NavigationPayload struct {
	Path string `json:"path"`
}

// SearchPayload accompanies TypeSearch.
type SearchPayload struct {
	Query        string `json:"query"`
	ResultsCount int    `json:"resultsCount"`
}

// ItemRef is the minimal item fallback sent when full catalog data is
// unavailable for an install/uninstall notification.
type ItemRef struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
}

// InstallPayload accompanies TypeInstall and TypeUninstall. Item is the
// full catalog record when available, or an ItemRef fallback.
type InstallPayload struct {
	Item any `json:"item"`
}

// NewInstallPayload builds an install payload from a catalog item.
func NewInstallPayload(it *catalog.Item) InstallPayload {
	return InstallPayload{Item: it}
}

// NewInstallPayloadRef builds the minimal fallback payload.
func NewInstallPayloadRef(id, itemType, displayName string) InstallPayload {
	return InstallPayload{Item: ItemRef{
		ID:          id,
		Type:        itemType,
		DisplayName: displayName,
		Name:        id,
	}}
}

// CheckInstalledPayload accompanies TypeCheckInstalled.
type CheckInstalledPayload struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Photo describes one lightbox image.
type Photo struct {
	URL          string `json:"url"`
	Photographer string `json:"photographer,omitempty"`
	Location     string `json:"location,omitempty"`
	Alt          string `json:"alt,omitempty"`
}

// LightboxPayload accompanies TypeLightbox. When embedded, the explorer
// delegates image viewing to the host instead of opening an overlay of
// its own.
type LightboxPayload struct {
	Action     string  `json:"action"`
	Index      int     `json:"index"`
	Photo      Photo   `json:"photo"`
	Photos     []Photo `json:"photos"`
	TotalCount int     `json:"totalCount"`
}

// ConfigFilters narrows the embedded explorer to a type or collection.
type ConfigFilters struct {
	Type       string `json:"type,omitempty"`
	Collection string `json:"collection,omitempty"`
}

// EmbedConfig is the TypeConfig payload pushed by the host after it
// sees TypeReady.
type EmbedConfig struct {
	Theme    string         `json:"theme,omitempty"`
	Filters  *ConfigFilters `json:"filters,omitempty"`
	ViewMode string         `json:"viewMode,omitempty"`
}

// InstalledPayload is the TypeInstalled payload reporting install state
// for one item.
type InstalledPayload struct {
	ID        string `json:"id"`
	Installed bool   `json:"installed"`
}
