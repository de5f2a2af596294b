package embedhost

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytab-app/market/internal/catalog"
)

func TestValidateInbound(t *testing.T) {
	tests := []struct {
		name    string
		msgType string
		ok      bool
	}{
		{"config", TypeConfig, true},
		{"installed", TypeInstalled, true},
		{"empty type", "", false},
		{"wrong namespace", "player:pause", false},
		{"outbound type rejected", TypeInstall, false},
		{"unknown in namespace", "marketplace:future-thing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Envelope{Type: tt.msgType}.ValidateInbound()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewEnvelopeWireShape(t *testing.T) {
	env, err := NewEnvelope(TypeSearch, SearchPayload{Query: "sunset", ResultsCount: 3})
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"marketplace:search","payload":{"query":"sunset","resultsCount":3}}`, string(data))
}

func TestNewEnvelopeNilPayload(t *testing.T) {
	env, err := NewEnvelope(TypeReady, nil)
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"marketplace:ready","payload":null}`, string(data))
}

// Install notifications carry the full catalog record when one is
// available, so the host never has to look the item up again.
func TestInstallPayloadFullItem(t *testing.T) {
	it := &catalog.Item{
		Name:        "northern-lights",
		DisplayName: "Northern Lights",
		Type:        catalog.TypePhotoPack,
		Author:      "aurora",
		Views:       120,
		Downloads:   40,
	}

	env, err := NewEnvelope(TypeInstall, NewInstallPayload(it))
	require.NoError(t, err)

	var decoded struct {
		Item catalog.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, *it, decoded.Item)
}

func TestInstallPayloadRefFallback(t *testing.T) {
	env, err := NewEnvelope(TypeUninstall, NewInstallPayloadRef("zen-minimal", "preset_settings", "Zen Minimal"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"item":{"id":"zen-minimal","type":"preset_settings","display_name":"Zen Minimal","name":"zen-minimal"}}`, string(env.Payload))
}

func TestEmbedConfigDecoding(t *testing.T) {
	raw := `{"theme":"dark","filters":{"type":"photo_pack"},"viewMode":"list"}`

	var cfg EmbedConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, "dark", cfg.Theme)
	require.NotNil(t, cfg.Filters)
	assert.Equal(t, "photo_pack", cfg.Filters.Type)
	assert.Empty(t, cfg.Filters.Collection)
	assert.Equal(t, "list", cfg.ViewMode)

	// Partial configs leave the rest zero.
	cfg = EmbedConfig{}
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"light"}`), &cfg))
	assert.Equal(t, "light", cfg.Theme)
	assert.Nil(t, cfg.Filters)
}
