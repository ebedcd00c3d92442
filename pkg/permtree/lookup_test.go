package permtree

import (
	"slices"
	"testing"
)

func TestLookup_ThreeSymbols(t *testing.T) {
	tree := New([]Symbol("abc"))

	if got := tree.LookupByEnumeration(4); got.String() != "bca" {
		t.Errorf("LookupByEnumeration(4) = %q, want %q", got.String(), "bca")
	}
	if got := tree.LookupByDirectRank(4); got.String() != "bca" {
		t.Errorf("LookupByDirectRank(4) = %q, want %q", got.String(), "bca")
	}

	for _, rank := range []int64{-3, 0, 7, 100} {
		if got := tree.LookupByEnumeration(rank); got != nil {
			t.Errorf("LookupByEnumeration(%d) = %q, want nil", rank, got.String())
		}
		if got := tree.LookupByDirectRank(rank); got != nil {
			t.Errorf("LookupByDirectRank(%d) = %q, want nil", rank, got.String())
		}
	}
}

func TestLookup_Degenerate(t *testing.T) {
	empty := New(nil)
	for _, rank := range []int64{0, 1, 2} {
		if got := empty.LookupByEnumeration(rank); got != nil {
			t.Errorf("empty: LookupByEnumeration(%d) = %q, want nil", rank, got.String())
		}
		if got := empty.LookupByDirectRank(rank); got != nil {
			t.Errorf("empty: LookupByDirectRank(%d) = %q, want nil", rank, got.String())
		}
	}

	single := New([]Symbol("x"))
	if got := single.LookupByEnumeration(1); got.String() != "x" {
		t.Errorf("single: LookupByEnumeration(1) = %q, want %q", got.String(), "x")
	}
	if got := single.LookupByDirectRank(1); got.String() != "x" {
		t.Errorf("single: LookupByDirectRank(1) = %q, want %q", got.String(), "x")
	}
	if got := single.LookupByEnumeration(2); got != nil {
		t.Errorf("single: LookupByEnumeration(2) = %q, want nil", got.String())
	}
	if got := single.LookupByDirectRank(2); got != nil {
		t.Errorf("single: LookupByDirectRank(2) = %q, want nil", got.String())
	}
}

func TestLookup_StrategiesAgree(t *testing.T) {
	for n := 1; n <= 6; n++ {
		tree := New(alphabet(n))
		total := SafeFactorial(n)
		for r := int64(1); r <= total; r++ {
			a := tree.LookupByEnumeration(r)
			b := tree.LookupByDirectRank(r)
			if a == nil || !slices.Equal(a, b) {
				t.Fatalf("n=%d rank=%d: enumeration %q, direct %q", n, r, a.String(), b.String())
			}
		}
	}
}

func TestLookup_DirectMatchesEnumerationOrder(t *testing.T) {
	// Same property as above for sizes where a lookup per rank would
	// re-enumerate too often.
	for n := 7; n <= 8; n++ {
		tree := New(alphabet(n))
		for i, p := range tree.Enumerate() {
			rank := int64(i + 1)
			if got := tree.LookupByDirectRank(rank); !slices.Equal(got, p) {
				t.Fatalf("n=%d rank=%d: direct %q, enumeration %q", n, rank, got.String(), p.String())
			}
		}
	}
}

func TestLookup_DuplicatesAgree(t *testing.T) {
	tree := New([]Symbol("abab"))
	for r := int64(1); r <= 24; r++ {
		a := tree.LookupByEnumeration(r)
		b := tree.LookupByDirectRank(r)
		if !slices.Equal(a, b) {
			t.Errorf("rank %d: enumeration %q, direct %q", r, a.String(), b.String())
		}
	}
}

func TestUnrank_LargeAlphabet(t *testing.T) {
	sorted := alphabet(20)

	if got := Unrank(sorted, 1); !slices.Equal(got, sorted) {
		t.Errorf("Unrank(1) = %q, want %q", got.String(), string(sorted))
	}

	last := Unrank(sorted, SafeFactorial(20))
	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)
	if !slices.Equal(last, reversed) {
		t.Errorf("Unrank(20!) = %q, want %q", last.String(), string(reversed))
	}

	if got := Unrank(alphabet(21), 1); got != nil {
		t.Errorf("Unrank over 21 symbols = %q, want nil (overflow)", got.String())
	}
}

func TestUnrank_DoesNotModifyInput(t *testing.T) {
	sorted := []Symbol("abcd")
	Unrank(sorted, 17)
	if string(sorted) != "abcd" {
		t.Errorf("Unrank modified its input: %q", string(sorted))
	}
}

func TestRank_RoundTrip(t *testing.T) {
	tree := New(alphabet(5))
	for rank, p := range tree.All() {
		if got := tree.Rank(p); got != rank {
			t.Errorf("Rank(%q) = %d, want %d", p.String(), got, rank)
		}
	}

	sorted := alphabet(20)
	for _, r := range []int64{1, 2, 999999937, SafeFactorial(20)} {
		if got := Rank(sorted, Unrank(sorted, r)); got != r {
			t.Errorf("Rank(Unrank(%d)) = %d", r, got)
		}
	}
}

func TestRank_NotAPermutation(t *testing.T) {
	sorted := []Symbol("abc")
	tests := []string{"", "ab", "abcd", "abd", "aab"}
	for _, p := range tests {
		if got := Rank(sorted, Permutation(p)); got != 0 {
			t.Errorf("Rank(%q) = %d, want 0", p, got)
		}
	}
}
