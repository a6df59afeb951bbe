package mask

import "testing"

func TestFromDigitsAndHas(t *testing.T) {
	m := FromDigits([]int{1, 4, 9})
	if !m.Has(1) || !m.Has(4) || !m.Has(9) {
		t.Fatalf("expected 1,4,9 set in %v", m)
	}
	if m.Has(2) || m.Has(5) {
		t.Fatalf("unexpected bits set in %v", m)
	}
	if m.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", m.Count())
	}
}

func TestSingle(t *testing.T) {
	m := FromDigit(7)
	d, ok := m.Single()
	if !ok || d != 7 {
		t.Fatalf("Single() = (%d, %v), want (7, true)", d, ok)
	}
	if _, ok := Empty.Single(); ok {
		t.Fatalf("Single() on empty mask should fail")
	}
	if _, ok := FromDigits([]int{1, 2}).Single(); ok {
		t.Fatalf("Single() on 2-bit mask should fail")
	}
}

func TestSetOps(t *testing.T) {
	a := FromDigits([]int{1, 2, 3})
	b := FromDigits([]int{2, 3, 4})
	if got := a.Intersect(b); !got.Equals(FromDigits([]int{2, 3})) {
		t.Fatalf("Intersect = %v", got)
	}
	if got := a.Union(b); !got.Equals(FromDigits([]int{1, 2, 3, 4})) {
		t.Fatalf("Union = %v", got)
	}
	if got := a.Subtract(b); !got.Equals(FromDigit(1)) {
		t.Fatalf("Subtract = %v", got)
	}
	if !FromDigit(1).Subset(a) {
		t.Fatalf("expected {1} subset of %v", a)
	}
}

func TestComplement(t *testing.T) {
	m := FromDigits([]int{1, 2, 3, 4, 5, 6, 7, 8})
	c := m.Complement()
	if got, ok := c.Single(); !ok || got != 9 {
		t.Fatalf("Complement() = %v, want {9}", c)
	}
}

func TestCombinationsCountC94(t *testing.T) {
	combos := Combinations(4)
	if len(combos) != 126 {
		t.Fatalf("Combinations(4) returned %d masks, want 126 (C(9,4))", len(combos))
	}
	seen := map[Mask]bool{}
	for _, c := range combos {
		if c.Count() != 4 {
			t.Fatalf("combo %v does not have 4 bits set", c)
		}
		if seen[c] {
			t.Fatalf("duplicate combo %v", c)
		}
		seen[c] = true
	}
}

func TestCombinationsAscending(t *testing.T) {
	combos := Combinations(2)
	for i := 1; i < len(combos); i++ {
		if combos[i] <= combos[i-1] {
			t.Fatalf("Combinations(2) not strictly ascending at %d: %v <= %v", i, combos[i], combos[i-1])
		}
	}
}

func TestCombinationsWithinSubset(t *testing.T) {
	subset := FromDigits([]int{2, 5, 7})
	combos := CombinationsWithinSubset(2, subset)
	if len(combos) != 3 {
		t.Fatalf("expected C(3,2)=3 combos, got %d", len(combos))
	}
	for _, c := range combos {
		if !c.Subset(subset) {
			t.Fatalf("combo %v not a subset of %v", c, subset)
		}
		if c.Count() != 2 {
			t.Fatalf("combo %v does not have 2 bits", c)
		}
	}
}

func TestCombinationsOfGeneric(t *testing.T) {
	items := []int{10, 20, 30}
	got := CombinationsOf(items, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(got))
	}
}
