package domain

import "strings"

// RelationResult is the n-ary intersection and union of a collection
type RelationResult struct {
	Arity        int
	Intersection *IdentifierSet
	Union        *IdentifierSet
}

// Compute derives the intersection and union of every set in the collection.
// A single set is its own intersection and union.
func Compute(c *SetCollection) (*RelationResult, error) {
	if c == nil || c.Arity() < MinArity || c.Arity() > MaxArity {
		arity := 0
		if c != nil {
			arity = c.Arity()
		}
		return nil, &UnsupportedArityError{Arity: arity}
	}

	sets := c.Sets()
	return &RelationResult{
		Arity:        len(sets),
		Intersection: Intersect(sets...).WithLabel("intersection"),
		Union:        Union(sets...).WithLabel("union"),
	}, nil
}

// Intersect returns the identifiers present in every given set.
// With no sets the result is empty.
func Intersect(sets ...*IdentifierSet) *IdentifierSet {
	if len(sets) == 0 {
		return newIdentifierSetFrom("", map[string]struct{}{})
	}

	// Probe from the smallest set; membership in all others is checked per id.
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	result := make(map[string]struct{})
	for id := range sets[smallest].members {
		if inAll(id, sets) {
			result[id] = struct{}{}
		}
	}
	return newIdentifierSetFrom("", result)
}

// Union returns the identifiers present in at least one given set
func Union(sets ...*IdentifierSet) *IdentifierSet {
	size := 0
	for _, s := range sets {
		size += s.Len()
	}
	result := make(map[string]struct{}, size)
	for _, s := range sets {
		for id := range s.members {
			result[id] = struct{}{}
		}
	}
	return newIdentifierSetFrom("", result)
}

func inAll(id string, sets []*IdentifierSet) bool {
	for _, s := range sets {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Regions maps a membership mask to the number of identifiers found in
// exactly that combination of sets. Mask character i is '1' when the
// identifier belongs to set i, so "110" is "in A and B but not C".
type Regions map[string]int

// ComputeRegions counts the exclusive regions of the collection's diagram.
// Every non-empty mask is present, including regions of size zero.
func ComputeRegions(c *SetCollection) Regions {
	sets := c.Sets()
	regions := make(Regions, 1<<len(sets)-1)
	for _, mask := range RegionMasks(len(sets)) {
		regions[mask] = 0
	}
	for id := range Union(sets...).members {
		var b strings.Builder
		for _, s := range sets {
			if s.Contains(id) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		regions[b.String()]++
	}
	return regions
}

// RegionMasks lists the non-empty membership masks for n sets in the order
// Venn renderers expect subsets: "10", "01", "11" for two sets and
// "100", "010", "110", "001", "101", "011", "111" for three.
func RegionMasks(n int) []string {
	masks := make([]string, 0, 1<<n-1)
	for v := 1; v < 1<<n; v++ {
		b := make([]byte, n)
		for i := 0; i < n; i++ {
			if v&(1<<i) != 0 {
				b[i] = '1'
			} else {
				b[i] = '0'
			}
		}
		masks = append(masks, string(b))
	}
	return masks
}
