package domain

import "sort"

// IdentifierSet is a labeled set of unique identifiers loaded from one input list
type IdentifierSet struct {
	Label      string
	SourcePath string

	members map[string]struct{}
}

// NewIdentifierSet creates a set from the given identifiers. Duplicates collapse.
func NewIdentifierSet(label, sourcePath string, ids ...string) *IdentifierSet {
	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return &IdentifierSet{
		Label:      label,
		SourcePath: sourcePath,
		members:    members,
	}
}

// newIdentifierSetFrom takes ownership of members without copying
func newIdentifierSetFrom(label string, members map[string]struct{}) *IdentifierSet {
	return &IdentifierSet{Label: label, members: members}
}

// Len returns the cardinality of the set
func (s *IdentifierSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Contains reports whether id is a member of the set
func (s *IdentifierSet) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[id]
	return ok
}

// Members returns the identifiers in ascending byte order.
// The returned slice is a copy and may be modified by the caller.
func (s *IdentifierSet) Members() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsSubsetOf reports whether every member of s is also a member of other
func (s *IdentifierSet) IsSubsetOf(other *IdentifierSet) bool {
	if s.Len() > other.Len() {
		return false
	}
	for id := range s.members {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same members. Labels are ignored.
func (s *IdentifierSet) Equal(other *IdentifierSet) bool {
	return s.Len() == other.Len() && s.IsSubsetOf(other)
}

// WithLabel returns a copy of the set carrying a different label.
// Members are shared; neither value is ever mutated.
func (s *IdentifierSet) WithLabel(label string) *IdentifierSet {
	return &IdentifierSet{
		Label:      label,
		SourcePath: s.SourcePath,
		members:    s.members,
	}
}
