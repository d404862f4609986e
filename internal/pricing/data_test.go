package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []string{OVHcloud, Scaleway}, c.IDs())

	p, ok := c.Lookup(OVHcloud)
	require.True(t, ok)
	assert.Equal(t, "Cloud Archive", p.Name)
	assert.Equal(t, 0.0000033333, p.AtRestCost)
	assert.Equal(t, 0.01, p.IngressCost)
	assert.Equal(t, 0.01, p.EgressCost)
	assert.Zero(t, p.FreeTier)

	p, ok = c.Lookup(Scaleway)
	require.True(t, ok)
	assert.Equal(t, "Glacier C14", p.Name)
	assert.Equal(t, 0.00000348, p.AtRestCost)
	assert.Zero(t, p.IngressCost)
	assert.Equal(t, 75.0, p.FreeTier)

	_, ok = c.Lookup("aws")
	assert.False(t, ok)
}

func TestCatalogLookupReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	p, _ := c.Lookup(OVHcloud)
	p.AtRestCost = 42

	again, _ := c.Lookup(OVHcloud)
	assert.Equal(t, 0.0000033333, again.AtRestCost)
}

func TestCatalogIDsReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	ids := c.IDs()
	ids[0] = "mutated"
	assert.Equal(t, OVHcloud, c.IDs()[0])
}

func TestCatalogWith(t *testing.T) {
	base := DefaultCatalog()
	extended, err := base.With(map[string]Provider{
		"zeta":  {Name: "Zeta Cold", ProviderName: "Zeta", AtRestCost: 0.000001},
		"alpha": {Name: "Alpha Cold", ProviderName: "Alpha", AtRestCost: 0.000002},
		Scaleway: {
			Name:         "Glacier C14",
			ProviderName: "Scaleway",
			AtRestCost:   0.000004,
			FreeTier:     75,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{OVHcloud, Scaleway, "alpha", "zeta"}, extended.IDs())
	p, _ := extended.Lookup(Scaleway)
	assert.Equal(t, 0.000004, p.AtRestCost)

	// receiver is untouched
	assert.Equal(t, []string{OVHcloud, Scaleway}, base.IDs())
	p, _ = base.Lookup(Scaleway)
	assert.Equal(t, 0.00000348, p.AtRestCost)
}

func TestCatalogWithInvalidProvider(t *testing.T) {
	_, err := DefaultCatalog().With(map[string]Provider{
		"bad": {Name: "Bad", IngressCost: -0.01},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestCatalogSelect(t *testing.T) {
	c := DefaultCatalog()

	all, err := c.Select(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, OVHcloud, all[0].ID)
	assert.Equal(t, Scaleway, all[1].ID)

	one, err := c.Select([]string{Scaleway, Scaleway})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Scaleway", one[0].Provider.ProviderName)

	_, err = c.Select([]string{"glacier"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}
