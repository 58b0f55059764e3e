package catchzone

import (
	"fmt"

	"github.com/vovakirdan/catch-zone/internal/config"
)

// ItemKind is an immutable item definition.
type ItemKind struct {
	Name   string
	Score  int    // Points for catching; unused for the hazard
	Token  string // Display token
	Hazard bool
}

// Catalog is the static table of item kinds: collectibles plus exactly one hazard.
type Catalog struct {
	collectibles []ItemKind
	hazard       ItemKind
}

// NewCatalog builds a catalog from config items.
func NewCatalog(items []config.ItemConfig) (*Catalog, error) {
	c := &Catalog{}
	hazards := 0
	for _, it := range items {
		kind := ItemKind{Name: it.Name, Score: it.Score, Token: it.Token, Hazard: it.Hazard}
		if it.Hazard {
			kind.Score = 0
			c.hazard = kind
			hazards++
			continue
		}
		c.collectibles = append(c.collectibles, kind)
	}
	if hazards != 1 {
		return nil, fmt.Errorf("catchzone: catalog needs exactly one hazard, got %d", hazards)
	}
	if len(c.collectibles) == 0 {
		return nil, fmt.Errorf("catchzone: catalog needs at least one collectible")
	}
	return c, nil
}

// Pick draws an item kind: the hazard with probability hazardChance,
// otherwise a collectible chosen uniformly.
func (c *Catalog) Pick(rng Rand, hazardChance float64) ItemKind {
	if rng.Float64() < hazardChance {
		return c.hazard
	}
	return c.collectibles[index(rng.Float64(), len(c.collectibles))]
}

// Kinds returns every kind, collectibles first, hazard last.
func (c *Catalog) Kinds() []ItemKind {
	out := make([]ItemKind, 0, len(c.collectibles)+1)
	out = append(out, c.collectibles...)
	return append(out, c.hazard)
}

// Hazard returns the hazard kind.
func (c *Catalog) Hazard() ItemKind {
	return c.hazard
}

// Lookup finds a kind by name.
func (c *Catalog) Lookup(name string) (ItemKind, bool) {
	for _, k := range c.Kinds() {
		if k.Name == name {
			return k, true
		}
	}
	return ItemKind{}, false
}

// index maps a uniform draw in [0,1) to [0,n).
func index(r float64, n int) int {
	i := int(r * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
