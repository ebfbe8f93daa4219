package domain

import (
	"fmt"
	"strings"
)

const (
	// MinArity is the smallest collection accepted by the loader
	MinArity = 1
	// MaxArity is the largest collection accepted anywhere
	MaxArity = 3
)

// DefaultLabels are used for list positions without an explicit label
var DefaultLabels = [MaxArity]string{"List 1", "List 2", "List 3"}

// SetCollection is the ordered set of lists compared in one run.
// Index 0, 1 and 2 map to the A, B and C slots of the diagram.
type SetCollection struct {
	sets []*IdentifierSet
}

// NewSetCollection builds a collection, rejecting arities outside 1..3
func NewSetCollection(sets ...*IdentifierSet) (*SetCollection, error) {
	if len(sets) < MinArity || len(sets) > MaxArity {
		return nil, &UnsupportedArityError{Arity: len(sets)}
	}
	for i, s := range sets {
		if s == nil {
			return nil, fmt.Errorf("list %d: missing identifier set", i+1)
		}
	}
	cp := make([]*IdentifierSet, len(sets))
	copy(cp, sets)
	return &SetCollection{sets: cp}, nil
}

// Arity returns the number of sets in the collection
func (c *SetCollection) Arity() int {
	return len(c.sets)
}

// Set returns the set at position i
func (c *SetCollection) Set(i int) *IdentifierSet {
	return c.sets[i]
}

// Sets returns the sets in slot order
func (c *SetCollection) Sets() []*IdentifierSet {
	cp := make([]*IdentifierSet, len(c.sets))
	copy(cp, c.sets)
	return cp
}

// Labels returns the base labels in slot order
func (c *SetCollection) Labels() []string {
	labels := make([]string, len(c.sets))
	for i, s := range c.sets {
		labels[i] = s.Label
	}
	return labels
}

// LabelSuffix joins the labels with "_" for use in output file names
func (c *SetCollection) LabelSuffix() string {
	return strings.Join(c.Labels(), "_")
}

// Comparable reports whether the collection supports a Venn diagram (2 or 3 sets)
func (c *SetCollection) Comparable() bool {
	return len(c.sets) >= 2 && len(c.sets) <= MaxArity
}
