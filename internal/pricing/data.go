package pricing

import (
	"fmt"
	"sort"
)

// Provider IDs shipped with the default catalog.
const (
	OVHcloud = "ovhcloud"
	Scaleway = "scaleway"
)

// defaultProviders holds the published cold-archive list prices in EUR excl. VAT.
var defaultProviders = map[string]Provider{
	OVHcloud: {
		Name:         "Cloud Archive",
		ProviderName: "OVHcloud",
		Description:  "Standard (EC 6+3)",
		AtRestCost:   0.0000033333,
		IngressCost:  0.01,
		EgressCost:   0.01,
	},
	Scaleway: {
		Name:         "Glacier C14",
		ProviderName: "Scaleway",
		Description:  "Standard (EC 6+3)",
		AtRestCost:   0.00000348,
		IngressCost:  0,
		EgressCost:   0.01,
		FreeTier:     75,
	},
}

// defaultOrder keeps reports stable for the built-in providers.
var defaultOrder = []string{OVHcloud, Scaleway}

// Catalog is a read-only set of providers keyed by ID.
type Catalog struct {
	providers map[string]Provider
	order     []string
}

// DefaultCatalog returns the built-in providers.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		providers: make(map[string]Provider, len(defaultProviders)),
		order:     append([]string(nil), defaultOrder...),
	}
	for id, p := range defaultProviders {
		c.providers[id] = p
	}
	return c
}

// With returns a new catalog containing c's providers plus extra. Entries in
// extra replace built-in providers with the same ID; new IDs are appended in
// sorted order.
func (c *Catalog) With(extra map[string]Provider) (*Catalog, error) {
	out := &Catalog{
		providers: make(map[string]Provider, len(c.providers)+len(extra)),
		order:     append([]string(nil), c.order...),
	}
	for id, p := range c.providers {
		out.providers[id] = p
	}

	ids := make([]string, 0, len(extra))
	for id := range extra {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := extra[id]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("custom provider %q: %w", id, err)
		}
		if _, exists := out.providers[id]; !exists {
			out.order = append(out.order, id)
		}
		out.providers[id] = p
	}
	return out, nil
}

// Lookup returns the provider registered under id.
func (c *Catalog) Lookup(id string) (Provider, bool) {
	p, ok := c.providers[id]
	return p, ok
}

// IDs returns provider IDs in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Select resolves ids to providers, preserving the requested order.
// An empty ids slice selects every provider.
func (c *Catalog) Select(ids []string) ([]Entry, error) {
	if len(ids) == 0 {
		ids = c.order
	}
	entries := make([]Entry, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, ok := c.providers[id]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q (available: %v)", id, c.order)
		}
		entries = append(entries, Entry{ID: id, Provider: p})
	}
	return entries, nil
}

// Entry pairs a provider with its catalog ID.
type Entry struct {
	ID       string
	Provider Provider
}
