package almanac

import "slices"

// Chain applies its maps in order, first to last.
type Chain struct {
	maps []*Map
}

// NewChain returns a chain applying maps in the given order.
func NewChain(maps ...*Map) *Chain {
	return &Chain{maps: slices.Clone(maps)}
}

// Maps returns the maps in application order.
func (c *Chain) Maps() []*Map {
	return slices.Clone(c.maps)
}

// Source returns the category of the chain's input, or "" for an empty chain.
func (c *Chain) Source() string {
	if len(c.maps) == 0 {
		return ""
	}

	return c.maps[0].Source()
}

// Destination returns the category of the chain's output, or "" for an empty chain.
func (c *Chain) Destination() string {
	if len(c.maps) == 0 {
		return ""
	}

	return c.maps[len(c.maps)-1].Destination()
}

// Lookup folds key through every map.
func (c *Chain) Lookup(key uint64) uint64 {
	for _, m := range c.maps {
		key = m.Lookup(key)
	}

	return key
}

// LookupRange folds r through every map. Each stage may split a range into
// several pieces, and every piece is carried through the remaining stages.
func (c *Chain) LookupRange(r Range) []Range {
	if r.Empty() {
		return nil
	}

	work := []Range{r}
	for _, m := range c.maps {
		next := make([]Range, 0, len(work))
		for _, w := range work {
			next = append(next, m.LookupRange(w)...)
		}

		work = next
	}

	return work
}
