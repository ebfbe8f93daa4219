package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// LabeledSet is the presentation view of an identifier set
type LabeledSet struct {
	DisplayLabel string `json:"display_label" yaml:"display_label"`
	Count        int    `json:"count" yaml:"count"`
}

// FormatCount formats n with thousands separators, e.g. 12345 -> "12,345"
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatLabel returns "<label>\n(<count>)"
func FormatLabel(label string, count int) string {
	return fmt.Sprintf("%s\n(%s)", label, FormatCount(count))
}

// Labeled projects a set onto its display label and cardinality
func Labeled(s *IdentifierSet) LabeledSet {
	return LabeledSet{
		DisplayLabel: FormatLabel(s.Label, s.Len()),
		Count:        s.Len(),
	}
}
