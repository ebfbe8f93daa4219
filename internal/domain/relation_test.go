package domain

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// randomSet draws up to n identifiers from a small universe so that
// generated sets overlap
func randomSet(f *gofakeit.Faker, label string, n int) *IdentifierSet {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("G%d", f.IntRange(1, 60)))
	}
	return NewIdentifierSet(label, "", ids...)
}

func mustCollection(t *testing.T, sets ...*IdentifierSet) *SetCollection {
	t.Helper()
	c, err := NewSetCollection(sets...)
	if err != nil {
		t.Fatalf("NewSetCollection: %v", err)
	}
	return c
}

func TestComputeTwoSets(t *testing.T) {
	a := NewIdentifierSet("List 1", "list1.txt", "G1", "G2", "G3")
	b := NewIdentifierSet("List 2", "list2.txt", "G2", "G3", "G4")

	result, err := Compute(mustCollection(t, a, b))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if got, want := result.Intersection.Members(), []string{"G2", "G3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("intersection = %v, want %v", got, want)
	}
	if got, want := result.Union.Members(), []string{"G1", "G2", "G3", "G4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}
	if result.Arity != 2 {
		t.Errorf("arity = %d, want 2", result.Arity)
	}
}

func TestComputeThreeSets(t *testing.T) {
	a := NewIdentifierSet("List 1", "", "G1", "G2", "G3")
	b := NewIdentifierSet("List 2", "", "G2", "G3", "G4")
	c := NewIdentifierSet("List 3", "", "G3", "G4", "G5")

	result, err := Compute(mustCollection(t, a, b, c))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if got, want := result.Intersection.Members(), []string{"G3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("intersection = %v, want %v", got, want)
	}
	if got, want := result.Union.Members(), []string{"G1", "G2", "G3", "G4", "G5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}
}

func TestComputeDisjoint(t *testing.T) {
	a := NewIdentifierSet("A", "", "x", "y")
	b := NewIdentifierSet("B", "", "p", "q")

	result, err := Compute(mustCollection(t, a, b))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if result.Intersection.Len() != 0 {
		t.Errorf("expected empty intersection, got %v", result.Intersection.Members())
	}
	if result.Union.Len() != 4 {
		t.Errorf("expected union of 4, got %d", result.Union.Len())
	}
}

func TestComputeSingleSet(t *testing.T) {
	a := NewIdentifierSet("A", "", "x", "y", "z")

	result, err := Compute(mustCollection(t, a))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !result.Intersection.Equal(a) {
		t.Errorf("intersection of one set should be the set, got %v", result.Intersection.Members())
	}
	if !result.Union.Equal(a) {
		t.Errorf("union of one set should be the set, got %v", result.Union.Members())
	}
}

func TestComputeRejectsNil(t *testing.T) {
	_, err := Compute(nil)
	var arityErr *UnsupportedArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("expected UnsupportedArityError, got %v", err)
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	a := NewIdentifierSet("A", "", "1", "2")
	b := NewIdentifierSet("B", "", "2", "3")

	if _, err := Compute(mustCollection(t, a, b)); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := a.Members(); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("A mutated: %v", got)
	}
	if got := b.Members(); !reflect.DeepEqual(got, []string{"2", "3"}) {
		t.Errorf("B mutated: %v", got)
	}
}

func TestIntersectNoSets(t *testing.T) {
	if got := Intersect(); got.Len() != 0 {
		t.Errorf("expected empty set, got %v", got.Members())
	}
	if got := Union(); got.Len() != 0 {
		t.Errorf("expected empty set, got %v", got.Members())
	}
}

func TestRelationProperties(t *testing.T) {
	f := gofakeit.New(42)

	for i := 0; i < 200; i++ {
		a := randomSet(f, "A", f.IntRange(0, 40))
		b := randomSet(f, "B", f.IntRange(0, 40))
		c := randomSet(f, "C", f.IntRange(0, 40))

		ab := Intersect(a, b)
		if !ab.IsSubsetOf(a) || !ab.IsSubsetOf(b) {
			t.Fatalf("iteration %d: intersection(A,B) is not a subset of both inputs", i)
		}

		if got, want := Union(a, b).Len(), a.Len()+b.Len()-ab.Len(); got != want {
			t.Fatalf("iteration %d: |A∪B| = %d, want |A|+|B|-|A∩B| = %d", i, got, want)
		}

		if !Intersect(a, b, c).IsSubsetOf(ab) {
			t.Fatalf("iteration %d: intersection(A,B,C) is not a subset of intersection(A,B)", i)
		}

		// Collection order must not change the relations
		if !Intersect(c, a, b).Equal(Intersect(a, b, c)) || !Union(c, b, a).Equal(Union(a, b, c)) {
			t.Fatalf("iteration %d: relations depend on set order", i)
		}
	}
}

func TestComputeRegions(t *testing.T) {
	t.Run("two sets", func(t *testing.T) {
		a := NewIdentifierSet("A", "", "G1", "G2", "G3")
		b := NewIdentifierSet("B", "", "G2", "G3", "G4")

		got := ComputeRegions(mustCollection(t, a, b))
		want := Regions{"10": 1, "01": 1, "11": 2}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("regions = %v, want %v", got, want)
		}
	})

	t.Run("three sets include empty regions", func(t *testing.T) {
		a := NewIdentifierSet("A", "", "G1", "G2", "G3")
		b := NewIdentifierSet("B", "", "G2", "G3", "G4")
		c := NewIdentifierSet("C", "", "G3", "G4", "G5")

		got := ComputeRegions(mustCollection(t, a, b, c))
		want := Regions{
			"100": 1, // G1
			"010": 0,
			"110": 1, // G2
			"001": 1, // G5
			"101": 0,
			"011": 1, // G4
			"111": 1, // G3
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("regions = %v, want %v", got, want)
		}
	})

	t.Run("regions sum to union", func(t *testing.T) {
		f := gofakeit.New(7)
		a := randomSet(f, "A", 30)
		b := randomSet(f, "B", 30)
		c := randomSet(f, "C", 30)

		total := 0
		for _, n := range ComputeRegions(mustCollection(t, a, b, c)) {
			total += n
		}
		if want := Union(a, b, c).Len(); total != want {
			t.Errorf("regions sum to %d, want %d", total, want)
		}
	})
}

func TestRegionMasks(t *testing.T) {
	if got, want := RegionMasks(2), []string{"10", "01", "11"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RegionMasks(2) = %v, want %v", got, want)
	}
	want3 := []string{"100", "010", "110", "001", "101", "011", "111"}
	if got := RegionMasks(3); !reflect.DeepEqual(got, want3) {
		t.Errorf("RegionMasks(3) = %v, want %v", got, want3)
	}
}
