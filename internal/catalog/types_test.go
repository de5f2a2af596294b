package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() Catalog {
	return Catalog{
		Items: []Item{
			{Name: "northern-lights", DisplayName: "Northern Lights", Type: TypePhotoPack, InCollections: []string{"nature"}},
			{Name: "stoic-quotes", DisplayName: "Stoic Quotes", Type: TypeQuotePack, InCollections: []string{"nature", "calm"}},
			{Name: "zen-minimal", DisplayName: "Zen Minimal", Type: TypePresetSettings},
		},
		Collections: []Collection{
			{Name: "nature", DisplayName: "Nature"},
			{Name: "calm", DisplayName: "Calm"},
			{Name: "empty", DisplayName: "Empty"},
		},
	}
}

func TestItemInCollection(t *testing.T) {
	it := Item{Name: "x", InCollections: []string{"nature", "calm"}}

	assert.True(t, it.InCollection("nature"))
	assert.True(t, it.InCollection("calm"))
	assert.False(t, it.InCollection("summer"))
	assert.False(t, Item{}.InCollection("nature"))
}

func TestCollectionContentTypes(t *testing.T) {
	c := sampleCatalog()

	nature := c.FindCollection("nature")
	require.NotNil(t, nature)
	assert.Equal(t, []string{TypePhotoPack, TypeQuotePack}, nature.ContentTypes(c.Items))

	calm := c.FindCollection("calm")
	require.NotNil(t, calm)
	assert.Equal(t, []string{TypeQuotePack}, calm.ContentTypes(c.Items))

	empty := c.FindCollection("empty")
	require.NotNil(t, empty)
	assert.Empty(t, empty.ContentTypes(c.Items))
}

func TestFindItem(t *testing.T) {
	c := sampleCatalog()

	it := c.FindItem(TypeQuotePack, "stoic-quotes")
	require.NotNil(t, it)
	assert.Equal(t, "Stoic Quotes", it.DisplayName)

	// Same name under the wrong type does not match.
	assert.Nil(t, c.FindItem(TypePhotoPack, "stoic-quotes"))
	assert.Nil(t, c.FindItem(TypeQuotePack, "missing"))
}

func TestFindCollection(t *testing.T) {
	c := sampleCatalog()

	assert.NotNil(t, c.FindCollection("nature"))
	assert.Nil(t, c.FindCollection("missing"))
}
