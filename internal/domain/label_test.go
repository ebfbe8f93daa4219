package domain

import "testing"

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		label string
		count int
		want  string
	}{
		{"List 1", 3, "List 1\n(3)"},
		{"List 2", 0, "List 2\n(0)"},
		{"Genes", 1234, "Genes\n(1,234)"},
		{"Big", 1234567, "Big\n(1,234,567)"},
	}

	for _, tt := range tests {
		if got := FormatLabel(tt.label, tt.count); got != tt.want {
			t.Errorf("FormatLabel(%q, %d) = %q, want %q", tt.label, tt.count, got, tt.want)
		}
	}
}

func TestLabeled(t *testing.T) {
	s := NewIdentifierSet("List 1", "", "G1", "G2", "G3", "G3")
	ls := Labeled(s)
	if ls.DisplayLabel != "List 1\n(3)" {
		t.Errorf("DisplayLabel = %q", ls.DisplayLabel)
	}
	if ls.Count != 3 {
		t.Errorf("Count = %d, want 3", ls.Count)
	}
}
