package permtree

import (
	"slices"
	"testing"
)

func TestEnumerate_ThreeSymbols(t *testing.T) {
	tree := New([]Symbol("abc"))

	want := []string{"abc", "acb", "bac", "bca", "cab", "cba"}
	if got := permStrings(tree.Enumerate()); !slices.Equal(got, want) {
		t.Errorf("Enumerate() = %v, want %v", got, want)
	}
}

func TestEnumerate_Degenerate(t *testing.T) {
	if got := New(nil).Enumerate(); len(got) != 0 {
		t.Errorf("empty alphabet: Enumerate() = %v, want none", got)
	}

	got := New([]Symbol("x")).Enumerate()
	if len(got) != 1 || got[0].String() != "x" {
		t.Errorf("single symbol: Enumerate() = %v, want [x]", got)
	}
}

func TestEnumerate_CountDistinctSorted(t *testing.T) {
	for n := 0; n <= 8; n++ {
		tree := New(alphabet(n))
		perms := tree.Enumerate()

		want := int(SafeFactorial(n))
		if n == 0 {
			want = 0
		}
		if len(perms) != want {
			t.Errorf("n=%d: got %d permutations, want %d", n, len(perms), want)
			continue
		}

		strs := permStrings(perms)
		if !slices.IsSorted(strs) {
			t.Errorf("n=%d: permutations not in lexicographic order", n)
		}
		if len(slices.Compact(slices.Clone(strs))) != len(strs) {
			t.Errorf("n=%d: duplicate permutations", n)
		}

		sorted := string(alphabet(n))
		for _, p := range perms {
			s := slices.Clone(p)
			slices.Sort(s)
			if string(s) != sorted {
				t.Errorf("n=%d: %q is not a permutation of %q", n, p.String(), sorted)
				break
			}
		}
	}
}

func TestEnumerate_Idempotent(t *testing.T) {
	tree := New([]Symbol("wxyz"))

	first := permStrings(tree.Enumerate())
	second := permStrings(tree.Enumerate())
	if !slices.Equal(first, second) {
		t.Error("repeated Enumerate() calls returned different results")
	}
}

func TestEnumerate_ResultsAreIndependent(t *testing.T) {
	tree := New([]Symbol("abc"))

	perms := tree.Enumerate()
	perms[0][0] = 'z'

	if got := tree.Enumerate()[0].String(); got != "abc" {
		t.Errorf("mutating a result leaked into the tree: got %q", got)
	}
	if perms[1].String() != "acb" {
		t.Errorf("results share storage: perms[1] = %q", perms[1].String())
	}
}

func TestAll_MatchesEnumerate(t *testing.T) {
	tree := New(alphabet(5))
	perms := tree.Enumerate()

	var n int64
	for rank, p := range tree.All() {
		n++
		if rank != n {
			t.Fatalf("rank = %d, want %d", rank, n)
		}
		if !slices.Equal(p, perms[rank-1]) {
			t.Errorf("rank %d: All() = %q, Enumerate() = %q", rank, p.String(), perms[rank-1].String())
		}
	}
	if n != int64(len(perms)) {
		t.Errorf("All() yielded %d, want %d", n, len(perms))
	}
}

func TestAll_StopsEarly(t *testing.T) {
	tree := New(alphabet(6))

	var got []string
	for _, p := range tree.All() {
		got = append(got, p.String())
		if len(got) == 3 {
			break
		}
	}

	want := []string{"abcdef", "abcdfe", "abcedf"}
	if !slices.Equal(got, want) {
		t.Errorf("first three = %v, want %v", got, want)
	}
}

func permStrings(perms []Permutation) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = p.String()
	}
	return out
}
